package domain

// EventRecord is one CloudTrail audit record. The field set is open-ended
// and provider-specific, so it stays an opaque mapping; identity is the
// record's index in the ingested sequence.
type EventRecord map[string]any

// stringField walks a dotted path of nested maps and returns the string at
// the leaf, or fallback when any hop is missing or not a string.
func (e EventRecord) stringField(fallback string, path ...string) string {
	var cur any = map[string]any(e)
	for _, key := range path {
		m, ok := cur.(map[string]any)
		if !ok {
			return fallback
		}
		cur, ok = m[key]
		if !ok {
			return fallback
		}
	}
	s, ok := cur.(string)
	if !ok || s == "" {
		return fallback
	}
	return s
}

// EventName returns the record's eventName, or "Unknown".
func (e EventRecord) EventName() string {
	return e.stringField("Unknown", "eventName")
}

// UserName returns userIdentity.userName, or "Unknown".
func (e EventRecord) UserName() string {
	return e.stringField("Unknown", "userIdentity", "userName")
}

// EventTime returns the record's eventTime, or "Unknown".
func (e EventRecord) EventTime() string {
	return e.stringField("Unknown", "eventTime")
}

// SourceIP returns the record's sourceIPAddress, or "Unknown".
func (e EventRecord) SourceIP() string {
	return e.stringField("Unknown", "sourceIPAddress")
}
