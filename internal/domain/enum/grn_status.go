package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// GRNStatus represents the lifecycle status of a goods receipt note
type GRNStatus int

const (
	GRNStatusDraft     GRNStatus = 0
	GRNStatusSubmitted GRNStatus = 1
)

func (s GRNStatus) String() string {
	return [...]string{"draft", "submitted"}[s]
}

// IsDraft reports whether the GRN is still an editable draft
func (s GRNStatus) IsDraft() bool {
	return s == GRNStatusDraft
}

func (s GRNStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *GRNStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = GRNStatus(i)
		return nil
	}
	switch str {
	case "draft":
		*s = GRNStatusDraft
	case "submitted":
		*s = GRNStatusSubmitted
	}
	return nil
}

func (s GRNStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *GRNStatus) Scan(value interface{}) error {
	if value == nil {
		*s = GRNStatusDraft
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = GRNStatus(v)
	case int:
		*s = GRNStatus(v)
	}
	return nil
}

// ParseGRNStatus maps a status query value to its enum, reporting whether
// the value is recognised.
func ParseGRNStatus(s string) (GRNStatus, bool) {
	switch s {
	case "draft":
		return GRNStatusDraft, true
	case "submitted":
		return GRNStatusSubmitted, true
	}
	return GRNStatusDraft, false
}
