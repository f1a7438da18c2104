package badge

import (
	"bytes"
	"compress/zlib"
	"encoding/base64"
	"io/ioutil"

	"github.com/max-dev001/ZeBadge/pix"
)

// EncodePayload produces the payload string the firmware's store and
// preview commands expect: base64 over zlib over the packed bitmap.
func EncodePayload(b *pix.Buffer) (string, error) {
	packed, err := Pack(b)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	if _, err := zw.Write(packed); err != nil {
		return "", err
	}
	if err := zw.Close(); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// DecodePayload reverses EncodePayload into a w×h buffer.
func DecodePayload(payload string, w, h int) (*pix.Buffer, error) {
	compressed, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, err
	}
	zr, err := zlib.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	packed, err := ioutil.ReadAll(zr)
	if err != nil {
		return nil, err
	}
	return Unpack(packed, w, h)
}
