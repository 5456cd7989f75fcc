package review

import (
	"strconv"
	"strings"

	"qareview/domain/core"
)

// Fingerprint computes a content hash over the full row set in load order.
// Reports record it so that identical outputs can be traced back to
// identical inputs.
func Fingerprint(rows []Row) core.DatasetFingerprint {
	var b strings.Builder
	for _, r := range rows {
		b.WriteString(r.Question)
		b.WriteByte(0x1f)
		b.WriteString(r.GroundTruth)
		b.WriteByte(0x1f)
		b.WriteString(r.Category)
		b.WriteByte(0x1f)
		b.WriteString(r.Chatbot)
		b.WriteByte(0x1f)
		if r.ErrorCode != nil {
			b.WriteString(strconv.Itoa(*r.ErrorCode))
		}
		b.WriteByte(0x1e)
	}
	return core.NewDatasetFingerprint([]byte(b.String()))
}
