package summary

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/ringitem/errs"
	"github.com/arloliu/ringitem/event"
	"github.com/arloliu/ringitem/format"
	"github.com/arloliu/ringitem/internal/ringtest"
)

func TestCollector_Run(t *testing.T) {
	buf := ringtest.Run(42)

	c := NewCollector()
	require.NoError(t, c.AddBuffer(buf))
	s := c.Summary()

	require.Equal(t, uint64(10), s.Events)
	require.Equal(t, uint64(len(buf)), s.Bytes)
	require.True(t, s.HasFormat)
	require.Equal(t, uint16(11), s.FormatMajor)
	require.Equal(t, []Run{{Number: 42, Title: "test run", Ended: true}}, s.Runs)
	require.Equal(t, []uint32{1, 2}, s.Sources)
	require.Equal(t, uint64(3), s.WithoutBodyHeader)

	want := []TypeStats{
		{Type: format.BeginRun, Events: 1},
		{Type: format.EndRun, Events: 1},
		{Type: format.PacketTypes, Events: 1},
		{Type: format.RingFormat, Events: 1},
		{Type: format.PeriodicScalers, Events: 3},
		{Type: format.PhysicsEvent, Events: 2},
		{Type: format.PhysicsEventCount, Events: 1},
	}
	require.Len(t, s.Types, len(want))
	var total uint64
	for i, st := range s.Types {
		require.Equal(t, want[i].Type, st.Type)
		require.Equal(t, want[i].Events, st.Events)
		total += st.Bytes
	}
	require.Equal(t, s.Bytes, total)
}

func TestCollector_DigestStable(t *testing.T) {
	a, b := NewCollector(), NewCollector()
	require.NoError(t, a.AddBuffer(ringtest.Run(1)))
	require.NoError(t, b.AddBuffer(ringtest.Run(1)))
	require.Equal(t, a.Summary().Digest, b.Summary().Digest)

	other := NewCollector()
	require.NoError(t, other.AddBuffer(ringtest.Run(2)))
	require.NotEqual(t, a.Summary().Digest, other.Summary().Digest)
}

func TestCollector_UnknownTypesAreCounted(t *testing.T) {
	buf := ringtest.NewBuilder().
		Event(format.ItemType(999), nil, []byte{1}).
		Event(format.ItemType(999), nil, nil).
		Bytes()

	c := NewCollector()
	require.NoError(t, c.AddBuffer(buf))
	s := c.Summary()
	require.Equal(t, []TypeStats{{Type: 999, Events: 2, Bytes: 25}}, s.Types)
}

func TestCollector_EndWithoutBegin(t *testing.T) {
	buf := ringtest.NewBuilder().
		Event(format.EndRun, nil, ringtest.StateChange(7, 0, 0, 1, "")).
		Bytes()

	c := NewCollector()
	require.NoError(t, c.AddBuffer(buf))
	require.Equal(t, []Run{{Number: 7, Ended: true}}, c.Summary().Runs)
}

func TestCollector_Errors(t *testing.T) {
	t.Run("bad body header", func(t *testing.T) {
		buf := ringtest.NewBuilder().Frame(16, 30, []byte{3, 0, 0, 0, 0, 0, 0, 0}).Bytes()
		require.ErrorIs(t, NewCollector().AddBuffer(buf), errs.ErrMalformedFraming)
	})

	t.Run("title without terminator", func(t *testing.T) {
		payload := ringtest.StateChange(1, 0, 0, 1, "")
		for i := 16; i < len(payload); i++ {
			payload[i] = 'x'
		}
		buf := ringtest.NewBuilder().Event(format.BeginRun, nil, payload).Bytes()
		require.ErrorIs(t, NewCollector().AddBuffer(buf), errs.ErrMalformedText)
	})

	t.Run("truncated", func(t *testing.T) {
		buf := ringtest.Run(1)
		require.ErrorIs(t, NewCollector().AddBuffer(buf[:len(buf)-2]), errs.ErrTruncated)
	})
}

func TestCollector_FailedAddLeavesStateUnchanged(t *testing.T) {
	c := NewCollector()
	require.NoError(t, c.AddBuffer(ringtest.Run(5)))
	before := c.Summary()

	badTitle := ringtest.StateChange(6, 0, 0, 1, "")
	for i := 16; i < len(badTitle); i++ {
		badTitle[i] = 'x'
	}
	shortFormat := []byte{11}

	cases := map[string][]byte{
		"begin run title":   ringtest.NewBuilder().Event(format.BeginRun, &ringtest.Header{SourceID: 9}, badTitle).Bytes(),
		"end run too short": ringtest.NewBuilder().Event(format.EndRun, nil, []byte{1, 2}).Bytes(),
		"ring format":       ringtest.NewBuilder().Event(format.RingFormat, nil, shortFormat).Bytes(),
	}
	for name, buf := range cases {
		t.Run(name, func(t *testing.T) {
			ev, err := event.New(buf)
			require.NoError(t, err)
			require.Error(t, c.Add(ev))
			require.Equal(t, before, c.Summary())
		})
	}
}

func TestCollector_Reset(t *testing.T) {
	c := NewCollector()
	require.NoError(t, c.AddBuffer(ringtest.Run(5)))
	c.Reset()

	empty := NewCollector().Summary()
	require.Equal(t, empty, c.Summary())

	require.NoError(t, c.AddBuffer(ringtest.Run(6)))
	fresh := NewCollector()
	require.NoError(t, fresh.AddBuffer(ringtest.Run(6)))
	require.Equal(t, fresh.Summary(), c.Summary())
}

func TestSummary_WriteText(t *testing.T) {
	c := NewCollector()
	require.NoError(t, c.AddBuffer(ringtest.Run(42)))

	var out bytes.Buffer
	require.NoError(t, c.Summary().WriteText(&out))

	text := out.String()
	require.Contains(t, text, "events:  10 (")
	require.Contains(t, text, "format:  11.0\n")
	require.Contains(t, text, "sources: [1 2] (3 events without body header)\n")
	require.Contains(t, text, "run 42: \"test run\" ended\n")
	require.Contains(t, text, "PeriodicScalers")
}
