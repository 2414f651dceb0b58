package item

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/ringitem/errs"
	"github.com/arloliu/ringitem/format"
	"github.com/arloliu/ringitem/internal/ringtest"
)

// ==============================================================================
// Dispatch
// ==============================================================================

func TestNew_Dispatch(t *testing.T) {
	tests := []struct {
		typ     format.ItemType
		payload []byte
		kind    Kind
	}{
		{format.BeginRun, ringtest.StateChange(1, 0, 0, 1, "a"), KindBeginRun},
		{format.EndRun, ringtest.StateChange(1, 0, 0, 1, "a"), KindEndRun},
		{format.PauseRun, ringtest.StateChange(1, 0, 0, 1, "a"), KindPauseRun},
		{format.ResumeRun, ringtest.StateChange(1, 0, 0, 1, "a"), KindResumeRun},
		{format.AbnormalEndRun, ringtest.StateChange(1, 0, 0, 1, "a"), KindAbnormalEndRun},
		{format.PacketTypes, ringtest.Text(0, 0, 1), KindPacketTypes},
		{format.MonitoredVariables, ringtest.Text(0, 0, 1, "x"), KindMonitoredVariables},
		{format.RingFormat, ringtest.RingFormat(11, 0), KindRingFormat},
		{format.PeriodicScalers, ringtest.Scalers(0, 1, 2, 1, false), KindPeriodicScalers},
		{format.PhysicsEvent, nil, KindPhysicsEvent},
		{format.PhysicsEventCount, ringtest.EventCount(0, 1, 2, 3), KindPhysicsEventCount},
		{format.EvbFragment, []byte{1}, KindEvbFragment},
		{format.EvbUnknownPayload, []byte{1}, KindEvbUnknownPayload},
		{format.EvbGlomInfo, ringtest.GlomInfo(5, true, 2), KindEvbGlomInfo},
		{format.ItemType(32769), []byte{9, 9}, KindUserItem},
		{format.ItemType(0xFFFFFFFF), nil, KindUserItem},
	}
	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			ri, err := New(uint32(tt.typ), tt.payload)
			require.NoError(t, err)
			require.Equal(t, tt.kind, ri.Kind())
			require.True(t, ri.Is(tt.kind))
			require.Equal(t, tt.typ, ri.ItemType())
			require.Equal(t, tt.payload, ri.Bytes())
		})
	}
}

func TestNew_UnknownItemType(t *testing.T) {
	for _, id := range []uint32{0, 6, 9, 13, 21, 32, 43, 999, 32768} {
		_, err := New(id, make([]byte, 128))
		require.ErrorIs(t, err, errs.ErrUnknownItemType, "type %d", id)
	}
}

func TestNew_ShortFixedFields(t *testing.T) {
	tests := []struct {
		typ  format.ItemType
		size int
	}{
		{format.BeginRun, 95},
		{format.PacketTypes, 15},
		{format.RingFormat, 3},
		{format.PeriodicScalers, 23},
		{format.PhysicsEventCount, 19},
		{format.EvbGlomInfo, 11},
	}
	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			_, err := New(uint32(tt.typ), make([]byte, tt.size))
			require.ErrorIs(t, err, errs.ErrOutOfBounds)

			_, err = New(uint32(tt.typ), make([]byte, tt.size+1))
			require.NoError(t, err)
		})
	}
}

func TestRingItem_AsMismatch(t *testing.T) {
	ri, err := New(uint32(format.PhysicsEvent), []byte{1, 2})
	require.NoError(t, err)

	_, ok := ri.AsBeginRun()
	require.False(t, ok)
	_, ok = ri.AsStateChange()
	require.False(t, ok)
	_, ok = ri.AsText()
	require.False(t, ok)
	_, ok = ri.AsPeriodicScalers()
	require.False(t, ok)
	_, ok = ri.AsUserItem()
	require.False(t, ok)

	pe, ok := ri.AsPhysicsEvent()
	require.True(t, ok)
	require.Equal(t, []byte{1, 2}, pe.Bytes())
}

func TestRingItem_ZeroValue(t *testing.T) {
	var ri RingItem
	require.Equal(t, KindInvalid, ri.Kind())
	require.Nil(t, ri.Bytes())

	_, ok := ri.AsStateChange()
	require.False(t, ok)
	_, ok = ri.AsRingFormat()
	require.False(t, ok)
}

func TestKind(t *testing.T) {
	require.Equal(t, "PeriodicScalers", KindPeriodicScalers.String())
	require.Equal(t, "UserItem", KindUserItem.String())
	require.Equal(t, "Invalid", Kind(200).String())

	require.True(t, KindPauseRun.IsStateChange())
	require.False(t, KindPacketTypes.IsStateChange())
	require.True(t, KindMonitoredVariables.IsText())
	require.True(t, KindEvbFragment.IsOpaque())
	require.False(t, KindEvbGlomInfo.IsOpaque())

	k, ok := KindOf(format.ItemType(40000))
	require.True(t, ok)
	require.Equal(t, KindUserItem, k)

	_, ok = KindOf(format.ItemType(7))
	require.False(t, ok)
}

// ==============================================================================
// State change
// ==============================================================================

func TestStateChange(t *testing.T) {
	payload := ringtest.StateChange(42, 7, 1700000000, 1000, "RUN42")

	for _, typ := range []format.ItemType{format.BeginRun, format.EndRun, format.PauseRun, format.ResumeRun, format.AbnormalEndRun} {
		t.Run(typ.String(), func(t *testing.T) {
			ri, err := New(uint32(typ), payload)
			require.NoError(t, err)

			sc, ok := ri.AsStateChange()
			require.True(t, ok)
			require.Equal(t, uint32(42), sc.RunNumber())
			require.Equal(t, uint32(7), sc.TimeOffset())
			require.Equal(t, uint32(1700000000), sc.Timestamp())
			require.Equal(t, uint32(1000), sc.OffsetDivisor())
			require.Len(t, sc.TitleBytes(), 80)
			require.Equal(t, payload, sc.Bytes())

			title, err := sc.Title()
			require.NoError(t, err)
			require.Equal(t, "RUN42", title)
		})
	}

	ri, err := New(uint32(format.EndRun), payload)
	require.NoError(t, err)
	_, ok := ri.AsBeginRun()
	require.False(t, ok)
	_, ok = ri.AsEndRun()
	require.True(t, ok)
	_, ok = ri.AsPauseRun()
	require.False(t, ok)
	_, ok = ri.AsResumeRun()
	require.False(t, ok)
	_, ok = ri.AsAbnormalEndRun()
	require.False(t, ok)
}

func TestStateChange_Title(t *testing.T) {
	t.Run("empty title", func(t *testing.T) {
		sc := StateChange{data: ringtest.StateChange(1, 0, 0, 1, "")}
		title, err := sc.Title()
		require.NoError(t, err)
		require.Empty(t, title)
	})

	t.Run("title using the whole region", func(t *testing.T) {
		long := make([]byte, 100)
		for i := range long {
			long[i] = 'x'
		}
		sc := StateChange{data: ringtest.StateChange(1, 0, 0, 1, string(long))}
		title, err := sc.Title()
		require.NoError(t, err)
		require.Len(t, title, 79)
	})

	t.Run("unterminated title", func(t *testing.T) {
		payload := ringtest.StateChange(1, 0, 0, 1, "")
		for i := 16; i < 96; i++ {
			payload[i] = 'y'
		}
		// A NUL after the region does not terminate the title.
		payload = append(payload, 0)

		sc := StateChange{data: payload}
		_, err := sc.Title()
		require.ErrorIs(t, err, errs.ErrMalformedText)
	})

	t.Run("invalid UTF-8", func(t *testing.T) {
		payload := ringtest.StateChange(1, 0, 0, 1, "ok")
		payload[16] = 0xff

		sc := StateChange{data: payload}
		_, err := sc.Title()
		require.ErrorIs(t, err, errs.ErrMalformedText)
	})

	t.Run("title aliases the payload", func(t *testing.T) {
		payload := ringtest.StateChange(1, 0, 0, 1, "shared")
		sc := StateChange{data: payload}
		title, err := sc.Title()
		require.NoError(t, err)
		require.Same(t, &payload[16], unsafeStringData(title))
	})
}

// ==============================================================================
// Text
// ==============================================================================

func TestText(t *testing.T) {
	payload := ringtest.Text(5, 1700000000, 1, "alpha", "beta", "")
	ri, err := New(uint32(format.MonitoredVariables), payload)
	require.NoError(t, err)

	txt, ok := ri.AsMonitoredVariables()
	require.True(t, ok)
	_, ok = ri.AsPacketTypes()
	require.False(t, ok)

	require.Equal(t, uint32(5), txt.TimeOffset())
	require.Equal(t, uint32(1700000000), txt.Timestamp())
	require.Equal(t, uint32(3), txt.StringCount())
	require.Equal(t, uint32(1), txt.OffsetDivisor())
	require.Equal(t, []byte("alpha\x00beta\x00\x00"), txt.StringsBytes())

	strs, err := txt.Strings()
	require.NoError(t, err)
	require.Equal(t, []string{"alpha", "beta", ""}, strs)
}

func TestText_SplitSemantics(t *testing.T) {
	header := func(count uint32) []byte {
		p := ringtest.Text(0, 0, 1)
		p[8] = byte(count)

		return p
	}

	tests := []struct {
		name    string
		count   uint32
		region  string
		want    []string
		wantErr bool
	}{
		{"zero count", 0, "ignored\x00", []string{}, false},
		{"fewer than available", 1, "a\x00b\x00", []string{"a"}, false},
		{"unterminated last", 2, "a\x00b", []string{"a", "b"}, false},
		{"empty after trailing NUL", 3, "a\x00b\x00", []string{"a", "b", ""}, false},
		{"empty region one string", 1, "", []string{""}, false},
		{"too few", 3, "a\x00b", nil, true},
		{"too few empty region", 2, "", nil, true},
		{"invalid UTF-8", 1, "\xc3\x28\x00", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txt := Text{data: append(header(tt.count), tt.region...)}
			strs, err := txt.Strings()
			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrMalformedText)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, strs)
		})
	}
}

func TestText_HugeCount(t *testing.T) {
	p := ringtest.Text(0, 0, 1, "one")
	p[8], p[9], p[10], p[11] = 0xff, 0xff, 0xff, 0xff

	_, err := Text{data: p}.Strings()
	require.ErrorIs(t, err, errs.ErrMalformedText)
}

// ==============================================================================
// Fixed-field shapes
// ==============================================================================

func TestRingFormat(t *testing.T) {
	ri, err := New(uint32(format.RingFormat), ringtest.RingFormat(11, 3))
	require.NoError(t, err)

	rf, ok := ri.AsRingFormat()
	require.True(t, ok)
	require.Equal(t, uint16(11), rf.Major())
	require.Equal(t, uint16(3), rf.Minor())
	require.Len(t, rf.Bytes(), 4)
}

func TestPeriodicScalers(t *testing.T) {
	ri, err := New(uint32(format.PeriodicScalers), ringtest.Scalers(10, 20, 1700000000, 1, false, 10, 20, 30))
	require.NoError(t, err)

	ps, ok := ri.AsPeriodicScalers()
	require.True(t, ok)
	require.Equal(t, uint32(10), ps.IntervalStartOffset())
	require.Equal(t, uint32(20), ps.IntervalEndOffset())
	require.Equal(t, uint32(1700000000), ps.Timestamp())
	require.Equal(t, uint32(1), ps.IntervalDivisor())
	require.Equal(t, uint32(3), ps.ScalerCount())
	require.False(t, ps.IsIncremental())

	scalers, err := ps.Scalers()
	require.NoError(t, err)
	require.Equal(t, []uint32{10, 20, 30}, scalers)
	require.Len(t, scalers, int(ps.ScalerCount()))

	v, err := ps.Scaler(2)
	require.NoError(t, err)
	require.Equal(t, uint32(30), v)

	_, err = ps.Scaler(3)
	require.ErrorIs(t, err, errs.ErrOutOfBounds)
	_, err = ps.Scaler(-1)
	require.ErrorIs(t, err, errs.ErrOutOfBounds)
}

func TestPeriodicScalers_Incremental(t *testing.T) {
	p := ringtest.Scalers(0, 0, 0, 1, false)
	p[20] = 0x80 // any nonzero flag value

	ps := PeriodicScalers{data: p}
	require.True(t, ps.IsIncremental())

	scalers, err := ps.Scalers()
	require.NoError(t, err)
	require.Empty(t, scalers)
}

func TestPeriodicScalers_AppendScalers(t *testing.T) {
	ps := PeriodicScalers{data: ringtest.Scalers(0, 0, 0, 1, true, 7, 8)}

	dst := []uint32{1}
	dst, err := ps.AppendScalers(dst)
	require.NoError(t, err)
	require.Equal(t, []uint32{1, 7, 8}, dst)
}

func TestPeriodicScalers_CountOverrun(t *testing.T) {
	p := ringtest.Scalers(0, 0, 0, 1, true, 1, 2, 3)
	p = p[:len(p)-2] // cut the last scaler short

	ri, err := New(uint32(format.PeriodicScalers), p)
	require.NoError(t, err)
	ps, _ := ri.AsPeriodicScalers()

	_, err = ps.Scalers()
	require.ErrorIs(t, err, errs.ErrMalformedText)
	_, err = ps.AppendScalers(nil)
	require.ErrorIs(t, err, errs.ErrMalformedText)
	_, err = ps.Scaler(0)
	require.ErrorIs(t, err, errs.ErrMalformedText)

	huge := ringtest.Scalers(0, 0, 0, 1, true)
	huge[16], huge[17], huge[18], huge[19] = 0xff, 0xff, 0xff, 0xff
	_, err = PeriodicScalers{data: huge}.Scalers()
	require.ErrorIs(t, err, errs.ErrMalformedText)
}

func TestPhysicsEventCount(t *testing.T) {
	ri, err := New(uint32(format.PhysicsEventCount), ringtest.EventCount(3, 1000, 1700000000, 1<<40))
	require.NoError(t, err)

	pc, ok := ri.AsPhysicsEventCount()
	require.True(t, ok)
	require.Equal(t, uint32(3), pc.TimeOffset())
	require.Equal(t, uint32(1000), pc.OffsetDivisor())
	require.Equal(t, uint32(1700000000), pc.Timestamp())
	require.Equal(t, uint64(1<<40), pc.EventCount())
	require.Len(t, pc.Bytes(), 20)
}

func TestEvbGlomInfo(t *testing.T) {
	ri, err := New(uint32(format.EvbGlomInfo), ringtest.GlomInfo(1234, true, 2))
	require.NoError(t, err)

	g, ok := ri.AsEvbGlomInfo()
	require.True(t, ok)
	require.Equal(t, uint64(1234), g.CoincidentTicks())
	require.True(t, g.IsBuilding())
	require.Equal(t, uint16(2), g.TimestampPolicy())
	require.Len(t, g.Bytes(), 12)

	g = EvbGlomInfo{data: ringtest.GlomInfo(0, false, 0)}
	require.False(t, g.IsBuilding())
}

func TestOpaqueShapes(t *testing.T) {
	payload := []byte{0xca, 0xfe}

	ri, err := New(uint32(format.EvbFragment), payload)
	require.NoError(t, err)
	frag, ok := ri.AsEvbFragment()
	require.True(t, ok)
	require.Equal(t, payload, frag.Bytes())

	ri, err = New(uint32(format.EvbUnknownPayload), payload)
	require.NoError(t, err)
	unk, ok := ri.AsEvbUnknownPayload()
	require.True(t, ok)
	require.Equal(t, payload, unk.Bytes())

	ri, err = New(40000, payload)
	require.NoError(t, err)
	user, ok := ri.AsUserItem()
	require.True(t, ok)
	require.Equal(t, uint32(40000), user.TypeID())
	require.Equal(t, payload, user.Bytes())
}
