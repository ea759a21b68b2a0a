package id

import (
	"crypto/md5"
	"io"

	foxuuid "github.com/fox-one/pkg/uuid"
	"github.com/gofrs/uuid"
)

// GenTraceID new random trace id
func GenTraceID() string {
	return foxuuid.New()
}

// Modify derives a per-leg trace id from an operation trace. Retried legs
// land on the same transfer row.
func Modify(traceID, modifier string) string {
	return foxuuid.Modify(traceID, modifier)
}

// TraceIDFrom derives a deterministic trace id from free text
func TraceIDFrom(text string) string {
	h := md5.New()
	io.WriteString(h, text)
	sum := h.Sum(nil)
	sum[6] = (sum[6] & 0x0f) | 0x30
	sum[8] = (sum[8] & 0x3f) | 0x80
	return uuid.FromBytesOrNil(sum).String()
}
