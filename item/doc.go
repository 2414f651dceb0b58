// Package item implements the ring item dispatcher and the typed payload views.
//
// A RingItem is a closed sum over the fifteen item types the wire format
// defines. It is built from an event's type identifier and the payload bytes
// that follow the body header:
//
//	ri, err := item.New(typeID, payload)
//	if err != nil {
//	    // errs.ErrUnknownItemType or errs.ErrOutOfBounds
//	}
//
//	switch ri.Kind() {
//	case item.KindBeginRun, item.KindEndRun:
//	    sc, _ := ri.AsStateChange()
//	    title, err := sc.Title()
//	case item.KindPeriodicScalers:
//	    ps, _ := ri.AsPeriodicScalers()
//	    scalers, err := ps.Scalers()
//	}
//
// # Shapes
//
//   - StateChange: BeginRun, EndRun, PauseRun, ResumeRun, AbnormalEndRun
//   - Text: PacketTypes, MonitoredVariables
//   - RingFormat, PeriodicScalers, PhysicsEventCount, EvbGlomInfo: fixed fields
//   - PhysicsEvent, EvbFragment, EvbUnknownPayload, UserItem: opaque bytes
//
// # Validation
//
// New checks that the payload is long enough for the variant's fixed fields,
// so the scalar accessors of every view cannot fail. Variable-length parts
// (titles, string lists, scaler arrays) are validated when they are read and
// report errs.ErrMalformedText.
//
// # Memory
//
// Views and the strings they return alias the caller's buffer. The buffer must
// not be modified or unmapped while any of them is in use.
package item
