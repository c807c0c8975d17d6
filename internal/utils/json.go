package utils

import (
	"encoding/json"

	"k8s.io/klog/v2"
)

// ToJSON marshals v for storage or logging. A marshal failure is logged
// and collapses to the empty string; callers treat the result as opaque.
func ToJSON(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		klog.Errorf("marshal %T failed: %v", v, err)
		return ""
	}
	return string(data)
}
