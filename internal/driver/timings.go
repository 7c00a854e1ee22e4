package driver

import (
	"encoding/json"
	"fmt"

	"cscan/internal/diag"
	"cscan/internal/source"
)

type timingPayload struct {
	Kind    string  `json:"kind"`
	Path    string  `json:"path,omitempty"`
	TotalMS float64 `json:"total_ms"`
}

// appendTimingDiagnostic records an OBS6001 info diagnostic. Timing
// entries bypass the bag limit so that a full bag still reports them.
func appendTimingDiagnostic(bag *diag.Bag, file source.FileID, payload timingPayload) {
	if bag == nil {
		return
	}
	if payload.Kind == "" {
		payload.Kind = "scan"
	}
	msg := fmt.Sprintf("timings (%s): total %.2f ms", payload.Kind, payload.TotalMS)

	data, err := json.Marshal(payload)
	if err != nil {
		return
	}

	entry := diag.ForFile(diag.SevInfo, diag.ObsTimings, file, msg).
		WithNote(source.Span{File: file}, string(data))

	if bag.Add(entry) {
		return
	}
	overflow := diag.NewBag(1)
	overflow.Add(entry)
	bag.Merge(overflow)
}
