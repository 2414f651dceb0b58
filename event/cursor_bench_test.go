package event

import (
	"testing"

	"github.com/arloliu/ringitem/format"
	"github.com/arloliu/ringitem/internal/ringtest"
	"github.com/arloliu/ringitem/item"
)

func benchmarkBuffer(n int) []byte {
	b := ringtest.NewBuilder()
	hdr := &ringtest.Header{SourceID: 1}
	for i := range n {
		switch i % 10 {
		case 0:
			b.Event(format.PeriodicScalers, hdr, ringtest.Scalers(0, 1, 2, 1, true, 1, 2, 3, 4, 5, 6, 7, 8))
		case 1:
			b.Event(format.PacketTypes, nil, ringtest.Text(0, 0, 1, "adc", "tdc", "qdc"))
		default:
			b.Event(format.PhysicsEvent, hdr, make([]byte, 64))
		}
	}

	return b.Bytes()
}

func BenchmarkCursor_Framing(b *testing.B) {
	buf := benchmarkBuffer(10000)
	b.SetBytes(int64(len(buf)))
	b.ResetTimer()

	for b.Loop() {
		cur := NewCursor(buf)
		for cur.Next() {
			_ = cur.Event().Size()
		}
	}
}

// BenchmarkCursor_AllAccessors touches every accessor of every event.
func BenchmarkCursor_AllAccessors(b *testing.B) {
	buf := benchmarkBuffer(10000)
	b.SetBytes(int64(len(buf)))
	scratch := make([]uint32, 0, 16)
	b.ResetTimer()

	for b.Loop() {
		for ev, err := range NewCursor(buf).All() {
			if err != nil {
				b.Fatal(err)
			}
			bh, err := ev.BodyHeader()
			if err != nil {
				b.Fatal(err)
			}
			_, _ = bh.SourceID()
			ri, err := ev.RingItem()
			if err != nil {
				b.Fatal(err)
			}
			switch ri.Kind() {
			case item.KindPeriodicScalers:
				ps, _ := ri.AsPeriodicScalers()
				scratch, _ = ps.AppendScalers(scratch[:0])
			case item.KindPacketTypes:
				txt, _ := ri.AsPacketTypes()
				_, _ = txt.Strings()
			default:
				_ = ri.Bytes()
			}
		}
	}
}
