package meetingv1

import (
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// Message is implemented by every wire type in this package.
type Message interface {
	MarshalWire() []byte
	UnmarshalWire([]byte) error
}

// walk iterates the top-level fields of b. fn handles a field and returns the
// number of payload bytes it consumed; returning 0 skips the field.
func walk(b []byte, fn func(num protowire.Number, typ protowire.Type, b []byte) (int, error)) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		m, err := fn(num, typ, b)
		if err != nil {
			return err
		}
		if m == 0 {
			m = protowire.ConsumeFieldValue(num, typ, b)
			if m < 0 {
				return protowire.ParseError(m)
			}
		}
		b = b[m:]
	}
	return nil
}

func consumeString(b []byte, dst *string) (int, error) {
	v, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	*dst = string(v)
	return n, nil
}

func consumeInt32(b []byte, dst *int32) (int, error) {
	v, n := protowire.ConsumeVarint(b)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	*dst = int32(v)
	return n, nil
}

func consumeMessage(b []byte, m Message) (int, error) {
	v, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	if err := m.UnmarshalWire(v); err != nil {
		return 0, err
	}
	return n, nil
}

// proto3 scalar defaults are omitted on the wire.

func appendString(b []byte, num protowire.Number, s string) []byte {
	if s == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, s)
}

func appendInt32(b []byte, num protowire.Number, v int32) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(v))
}

func appendMessage(b []byte, num protowire.Number, m Message) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, m.MarshalWire())
}

func appendTimestamp(b []byte, num protowire.Number, ts *timestamppb.Timestamp) []byte {
	if ts == nil {
		return b
	}
	var inner []byte
	if ts.Seconds != 0 {
		inner = protowire.AppendTag(inner, 1, protowire.VarintType)
		inner = protowire.AppendVarint(inner, uint64(ts.Seconds))
	}
	if ts.Nanos != 0 {
		inner = protowire.AppendTag(inner, 2, protowire.VarintType)
		inner = protowire.AppendVarint(inner, uint64(ts.Nanos))
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, inner)
}

func consumeTimestamp(b []byte, dst **timestamppb.Timestamp) (int, error) {
	v, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	ts := &timestamppb.Timestamp{}
	err := walk(v, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch {
		case num == 1 && typ == protowire.VarintType:
			sec, m := protowire.ConsumeVarint(b)
			if m < 0 {
				return 0, protowire.ParseError(m)
			}
			ts.Seconds = int64(sec)
			return m, nil
		case num == 2 && typ == protowire.VarintType:
			ns, m := protowire.ConsumeVarint(b)
			if m < 0 {
				return 0, protowire.ParseError(m)
			}
			ts.Nanos = int32(ns)
			return m, nil
		}
		return 0, nil
	})
	if err != nil {
		return 0, err
	}
	*dst = ts
	return n, nil
}

func (m *RegisterRequest) MarshalWire() []byte {
	var b []byte
	b = appendString(b, 1, m.Email)
	b = appendString(b, 2, m.Password)
	b = appendString(b, 3, m.Name)
	return b
}

func (m *RegisterRequest) UnmarshalWire(b []byte) error {
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if typ != protowire.BytesType {
			return 0, nil
		}
		switch num {
		case 1:
			return consumeString(b, &m.Email)
		case 2:
			return consumeString(b, &m.Password)
		case 3:
			return consumeString(b, &m.Name)
		}
		return 0, nil
	})
}

func (m *RegisterResponse) MarshalWire() []byte {
	var b []byte
	b = appendString(b, 1, m.UserId)
	b = appendString(b, 2, m.Token)
	b = appendString(b, 3, m.RefreshToken)
	return b
}

func (m *RegisterResponse) UnmarshalWire(b []byte) error {
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if typ != protowire.BytesType {
			return 0, nil
		}
		switch num {
		case 1:
			return consumeString(b, &m.UserId)
		case 2:
			return consumeString(b, &m.Token)
		case 3:
			return consumeString(b, &m.RefreshToken)
		}
		return 0, nil
	})
}

func (m *LoginRequest) MarshalWire() []byte {
	var b []byte
	b = appendString(b, 1, m.Email)
	b = appendString(b, 2, m.Password)
	return b
}

func (m *LoginRequest) UnmarshalWire(b []byte) error {
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if typ != protowire.BytesType {
			return 0, nil
		}
		switch num {
		case 1:
			return consumeString(b, &m.Email)
		case 2:
			return consumeString(b, &m.Password)
		}
		return 0, nil
	})
}

func (m *LoginResponse) MarshalWire() []byte {
	var b []byte
	b = appendString(b, 1, m.Token)
	b = appendString(b, 2, m.UserId)
	b = appendString(b, 3, m.Name)
	b = appendString(b, 4, m.RefreshToken)
	return b
}

func (m *LoginResponse) UnmarshalWire(b []byte) error {
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if typ != protowire.BytesType {
			return 0, nil
		}
		switch num {
		case 1:
			return consumeString(b, &m.Token)
		case 2:
			return consumeString(b, &m.UserId)
		case 3:
			return consumeString(b, &m.Name)
		case 4:
			return consumeString(b, &m.RefreshToken)
		}
		return 0, nil
	})
}

func (m *RefreshRequest) MarshalWire() []byte {
	return appendString(nil, 1, m.RefreshToken)
}

func (m *RefreshRequest) UnmarshalWire(b []byte) error {
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 && typ == protowire.BytesType {
			return consumeString(b, &m.RefreshToken)
		}
		return 0, nil
	})
}

func (m *RefreshResponse) MarshalWire() []byte {
	var b []byte
	b = appendString(b, 1, m.Token)
	b = appendString(b, 2, m.RefreshToken)
	return b
}

func (m *RefreshResponse) UnmarshalWire(b []byte) error {
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if typ != protowire.BytesType {
			return 0, nil
		}
		switch num {
		case 1:
			return consumeString(b, &m.Token)
		case 2:
			return consumeString(b, &m.RefreshToken)
		}
		return 0, nil
	})
}

func (m *LogoutRequest) MarshalWire() []byte {
	return appendString(nil, 1, m.RefreshToken)
}

func (m *LogoutRequest) UnmarshalWire(b []byte) error {
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 && typ == protowire.BytesType {
			return consumeString(b, &m.RefreshToken)
		}
		return 0, nil
	})
}

func (m *LogoutResponse) MarshalWire() []byte        { return nil }
func (m *LogoutResponse) UnmarshalWire([]byte) error { return nil }

func (m *GetSessionRequest) MarshalWire() []byte        { return nil }
func (m *GetSessionRequest) UnmarshalWire([]byte) error { return nil }

func (m *GetSessionResponse) MarshalWire() []byte {
	var b []byte
	if m.User != nil {
		b = appendMessage(b, 1, m.User)
	}
	return b
}

func (m *GetSessionResponse) UnmarshalWire(b []byte) error {
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 && typ == protowire.BytesType {
			m.User = &User{}
			return consumeMessage(b, m.User)
		}
		return 0, nil
	})
}

func (m *User) MarshalWire() []byte {
	var b []byte
	b = appendString(b, 1, m.Id)
	b = appendString(b, 2, m.Email)
	b = appendString(b, 3, m.Name)
	return b
}

func (m *User) UnmarshalWire(b []byte) error {
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if typ != protowire.BytesType {
			return 0, nil
		}
		switch num {
		case 1:
			return consumeString(b, &m.Id)
		case 2:
			return consumeString(b, &m.Email)
		case 3:
			return consumeString(b, &m.Name)
		}
		return 0, nil
	})
}

func (m *ParticipantDraft) MarshalWire() []byte {
	var b []byte
	b = appendString(b, 1, m.Name)
	b = appendString(b, 2, m.Email)
	return b
}

func (m *ParticipantDraft) UnmarshalWire(b []byte) error {
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if typ != protowire.BytesType {
			return 0, nil
		}
		switch num {
		case 1:
			return consumeString(b, &m.Name)
		case 2:
			return consumeString(b, &m.Email)
		}
		return 0, nil
	})
}

func (m *AgendaDraft) MarshalWire() []byte {
	var b []byte
	b = appendString(b, 1, m.Title)
	b = appendString(b, 2, m.Description)
	b = appendInt32(b, 3, m.DurationMinutes)
	return b
}

func (m *AgendaDraft) UnmarshalWire(b []byte) error {
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch {
		case num == 1 && typ == protowire.BytesType:
			return consumeString(b, &m.Title)
		case num == 2 && typ == protowire.BytesType:
			return consumeString(b, &m.Description)
		case num == 3 && typ == protowire.VarintType:
			return consumeInt32(b, &m.DurationMinutes)
		}
		return 0, nil
	})
}

func (m *CreateMeetingRequest) MarshalWire() []byte {
	var b []byte
	b = appendString(b, 1, m.Title)
	b = appendString(b, 2, m.Description)
	b = appendString(b, 3, m.Location)
	b = appendString(b, 4, m.Date)
	b = appendString(b, 5, m.StartTime)
	b = appendString(b, 6, m.EndTime)
	for _, p := range m.Participants {
		b = appendMessage(b, 7, p)
	}
	for _, a := range m.AgendaItems {
		b = appendMessage(b, 8, a)
	}
	return b
}

func (m *CreateMeetingRequest) UnmarshalWire(b []byte) error {
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if typ != protowire.BytesType {
			return 0, nil
		}
		switch num {
		case 1:
			return consumeString(b, &m.Title)
		case 2:
			return consumeString(b, &m.Description)
		case 3:
			return consumeString(b, &m.Location)
		case 4:
			return consumeString(b, &m.Date)
		case 5:
			return consumeString(b, &m.StartTime)
		case 6:
			return consumeString(b, &m.EndTime)
		case 7:
			p := &ParticipantDraft{}
			n, err := consumeMessage(b, p)
			if err == nil {
				m.Participants = append(m.Participants, p)
			}
			return n, err
		case 8:
			a := &AgendaDraft{}
			n, err := consumeMessage(b, a)
			if err == nil {
				m.AgendaItems = append(m.AgendaItems, a)
			}
			return n, err
		}
		return 0, nil
	})
}

func (m *CreateMeetingResponse) MarshalWire() []byte {
	var b []byte
	if m.Meeting != nil {
		b = appendMessage(b, 1, m.Meeting)
	}
	return b
}

func (m *CreateMeetingResponse) UnmarshalWire(b []byte) error {
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 && typ == protowire.BytesType {
			m.Meeting = &Meeting{}
			return consumeMessage(b, m.Meeting)
		}
		return 0, nil
	})
}

func (m *ListMeetingsRequest) MarshalWire() []byte        { return nil }
func (m *ListMeetingsRequest) UnmarshalWire([]byte) error { return nil }

func (m *ListMeetingsResponse) MarshalWire() []byte {
	var b []byte
	for _, mt := range m.Meetings {
		b = appendMessage(b, 1, mt)
	}
	return b
}

func (m *ListMeetingsResponse) UnmarshalWire(b []byte) error {
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 && typ == protowire.BytesType {
			mt := &Meeting{}
			n, err := consumeMessage(b, mt)
			if err == nil {
				m.Meetings = append(m.Meetings, mt)
			}
			return n, err
		}
		return 0, nil
	})
}

func (m *Meeting) MarshalWire() []byte {
	var b []byte
	b = appendString(b, 1, m.Id)
	b = appendString(b, 2, m.Title)
	b = appendString(b, 3, m.Description)
	b = appendString(b, 4, m.Location)
	b = appendTimestamp(b, 5, m.StartTime)
	b = appendTimestamp(b, 6, m.EndTime)
	b = appendString(b, 7, m.CreatedBy)
	for _, p := range m.Participants {
		b = appendMessage(b, 8, p)
	}
	for _, a := range m.AgendaItems {
		b = appendMessage(b, 9, a)
	}
	b = appendTimestamp(b, 10, m.CreatedAt)
	return b
}

func (m *Meeting) UnmarshalWire(b []byte) error {
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if typ != protowire.BytesType {
			return 0, nil
		}
		switch num {
		case 1:
			return consumeString(b, &m.Id)
		case 2:
			return consumeString(b, &m.Title)
		case 3:
			return consumeString(b, &m.Description)
		case 4:
			return consumeString(b, &m.Location)
		case 5:
			return consumeTimestamp(b, &m.StartTime)
		case 6:
			return consumeTimestamp(b, &m.EndTime)
		case 7:
			return consumeString(b, &m.CreatedBy)
		case 8:
			p := &Participant{}
			n, err := consumeMessage(b, p)
			if err == nil {
				m.Participants = append(m.Participants, p)
			}
			return n, err
		case 9:
			a := &AgendaItem{}
			n, err := consumeMessage(b, a)
			if err == nil {
				m.AgendaItems = append(m.AgendaItems, a)
			}
			return n, err
		case 10:
			return consumeTimestamp(b, &m.CreatedAt)
		}
		return 0, nil
	})
}

func (m *Participant) MarshalWire() []byte {
	var b []byte
	b = appendString(b, 1, m.Id)
	b = appendString(b, 2, m.UserId)
	b = appendString(b, 3, m.Name)
	b = appendString(b, 4, m.Email)
	b = appendString(b, 5, m.Status)
	return b
}

func (m *Participant) UnmarshalWire(b []byte) error {
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if typ != protowire.BytesType {
			return 0, nil
		}
		switch num {
		case 1:
			return consumeString(b, &m.Id)
		case 2:
			return consumeString(b, &m.UserId)
		case 3:
			return consumeString(b, &m.Name)
		case 4:
			return consumeString(b, &m.Email)
		case 5:
			return consumeString(b, &m.Status)
		}
		return 0, nil
	})
}

func (m *AgendaItem) MarshalWire() []byte {
	var b []byte
	b = appendString(b, 1, m.Id)
	b = appendString(b, 2, m.Title)
	b = appendString(b, 3, m.Description)
	b = appendInt32(b, 4, m.DurationMinutes)
	b = appendInt32(b, 5, m.Order)
	return b
}

func (m *AgendaItem) UnmarshalWire(b []byte) error {
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch {
		case num == 1 && typ == protowire.BytesType:
			return consumeString(b, &m.Id)
		case num == 2 && typ == protowire.BytesType:
			return consumeString(b, &m.Title)
		case num == 3 && typ == protowire.BytesType:
			return consumeString(b, &m.Description)
		case num == 4 && typ == protowire.VarintType:
			return consumeInt32(b, &m.DurationMinutes)
		case num == 5 && typ == protowire.VarintType:
			return consumeInt32(b, &m.Order)
		}
		return 0, nil
	})
}
