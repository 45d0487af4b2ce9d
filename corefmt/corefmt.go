// Package corefmt 提供核心狀態（snapshot）與批次輸出在邊界上的編碼格式。
//
// 兩條傳輸路徑，各自一種格式：
//   - JSON/HTTP：Base64URL（無 padding，可直接放進 query string 與 JSON 欄位）。
//   - 檔案/二進位串流：length-prefixed blob frame（uvarint 長度 + payload）。
package corefmt

import (
	"bufio"
	"encoding/base64"
	"encoding/binary"
	"io"

	"github.com/zintix-labs/randlab/errs"
)

// EncodeBase64URL 把 raw bytes 編成無 padding 的 Base64URL 字串。
func EncodeBase64URL(b []byte) string {
	return base64.RawURLEncoding.EncodeToString(b)
}

// DecodeBase64URL 還原 EncodeBase64URL 的輸出。
func DecodeBase64URL(s string) ([]byte, error) {
	b, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return nil, errs.Wrap(err, "decode base64url failed")
	}
	return b, nil
}

// EncodeBlobFrame 把 payload 編成 length-prefixed frame：
//
//	frame := uvarint(len(payload)) || payload
//
// 這是檔案與二進位串流用的格式；JSON/HTTP 文字傳輸請用 Base64URL。
func EncodeBlobFrame(payload []byte) []byte {
	var hdr [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(hdr[:], uint64(len(payload)))

	out := make([]byte, 0, n+len(payload))
	out = append(out, hdr[:n]...)
	out = append(out, payload...)
	return out
}

// DecodeBlobFrame 還原 EncodeBlobFrame 的輸出；frame 格式錯誤或被截斷時回傳錯誤。
func DecodeBlobFrame(frame []byte) ([]byte, error) {
	n, size := binary.Uvarint(frame)
	if size <= 0 {
		return nil, errs.NewWarn("decode blob frame failed: invalid varint length")
	}
	if uint64(len(frame)-size) < n {
		return nil, errs.NewWarn("decode blob frame failed: truncated payload")
	}
	payload := frame[size : size+int(n)]
	// 回傳複本，避免呼叫端長期持有整個 frame 的 backing array
	out := make([]byte, len(payload))
	copy(out, payload)
	return out, nil
}

// WriteBlobFrame 把 payload 以 length-prefixed frame 寫入 w。
//
// Generator.WriteSnapshot 用它把核心狀態落地到檔案。
func WriteBlobFrame(w io.Writer, payload []byte) error {
	var hdr [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(hdr[:], uint64(len(payload)))
	if _, err := w.Write(hdr[:n]); err != nil {
		return errs.Wrap(err, "write blob frame header failed")
	}
	if _, err := w.Write(payload); err != nil {
		return errs.Wrap(err, "write blob frame payload failed")
	}
	return nil
}

// ReadBlobFrame 從 r 讀回一個 frame。
//
// maxBytes 是讀取不可信輸入時的配置上限（0 表示不設限）。
func ReadBlobFrame(r io.Reader, maxBytes uint64) ([]byte, error) {
	br := bufio.NewReader(r)
	ln, err := binary.ReadUvarint(br)
	if err != nil {
		return nil, errs.Wrap(err, "read blob frame header failed")
	}
	if maxBytes > 0 && ln > maxBytes {
		return nil, errs.NewWarn("read blob frame failed: payload exceeds maxBytes")
	}
	buf := make([]byte, ln)
	if _, err := io.ReadFull(br, buf); err != nil {
		return nil, errs.Wrap(err, "read blob frame payload failed")
	}
	return buf, nil
}
