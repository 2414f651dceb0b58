package item

import (
	"fmt"

	"github.com/arloliu/ringitem/endian"
	"github.com/arloliu/ringitem/errs"
	"github.com/arloliu/ringitem/format"
)

// RingItem is the typed payload of one event.
//
// The zero value has KindInvalid and every As method returns false.
type RingItem struct {
	kind Kind
	typ  format.ItemType
	data []byte
}

// New dispatches on typeID and builds the matching payload view over payload.
//
// Parameters:
//   - typeID: The event's item type identifier
//   - payload: Bytes from the end of the body header to the end of the event
//
// Returns:
//   - RingItem: The tagged payload view
//   - error: errs.ErrUnknownItemType for unlisted types outside the user item range,
//     errs.ErrOutOfBounds if payload is too short for the variant's fixed fields
func New(typeID uint32, payload []byte) (RingItem, error) {
	typ := format.ItemType(typeID)

	kind, ok := KindOf(typ)
	if !ok {
		return RingItem{}, fmt.Errorf("%w: %d", errs.ErrUnknownItemType, typeID)
	}

	if err := endian.CheckBounds(payload, 0, kind.minPayloadSize()); err != nil {
		return RingItem{}, fmt.Errorf("%s payload: %w", kind, err)
	}

	return RingItem{kind: kind, typ: typ, data: payload}, nil
}

// Kind returns the variant of the item.
func (r RingItem) Kind() Kind {
	return r.kind
}

// Is reports whether the item is of kind k.
func (r RingItem) Is(k Kind) bool {
	return r.kind == k
}

// ItemType returns the wire type identifier the item was built from.
// For user items this is the exact identifier, not the range boundary.
func (r RingItem) ItemType() format.ItemType {
	return r.typ
}

// Bytes returns the payload bytes, regardless of variant.
func (r RingItem) Bytes() []byte {
	return r.data
}

// AsStateChange returns the shared state change view for any of the five
// run state change kinds.
func (r RingItem) AsStateChange() (StateChange, bool) {
	if !r.kind.IsStateChange() {
		return StateChange{}, false
	}

	return StateChange{data: r.data}, true
}

// AsBeginRun returns the state change view if the item is a BeginRun.
func (r RingItem) AsBeginRun() (StateChange, bool) {
	return r.stateChange(KindBeginRun)
}

// AsEndRun returns the state change view if the item is an EndRun.
func (r RingItem) AsEndRun() (StateChange, bool) {
	return r.stateChange(KindEndRun)
}

// AsPauseRun returns the state change view if the item is a PauseRun.
func (r RingItem) AsPauseRun() (StateChange, bool) {
	return r.stateChange(KindPauseRun)
}

// AsResumeRun returns the state change view if the item is a ResumeRun.
func (r RingItem) AsResumeRun() (StateChange, bool) {
	return r.stateChange(KindResumeRun)
}

// AsAbnormalEndRun returns the state change view if the item is an AbnormalEndRun.
func (r RingItem) AsAbnormalEndRun() (StateChange, bool) {
	return r.stateChange(KindAbnormalEndRun)
}

// AsText returns the string list view for PacketTypes or MonitoredVariables.
func (r RingItem) AsText() (Text, bool) {
	if !r.kind.IsText() {
		return Text{}, false
	}

	return Text{data: r.data}, true
}

// AsPacketTypes returns the string list view if the item is a PacketTypes.
func (r RingItem) AsPacketTypes() (Text, bool) {
	return r.text(KindPacketTypes)
}

// AsMonitoredVariables returns the string list view if the item is a MonitoredVariables.
func (r RingItem) AsMonitoredVariables() (Text, bool) {
	return r.text(KindMonitoredVariables)
}

// AsRingFormat returns the format version view if the item is a RingFormat.
func (r RingItem) AsRingFormat() (RingFormat, bool) {
	if r.kind != KindRingFormat {
		return RingFormat{}, false
	}

	return RingFormat{data: r.data}, true
}

// AsPeriodicScalers returns the scaler view if the item is a PeriodicScalers.
func (r RingItem) AsPeriodicScalers() (PeriodicScalers, bool) {
	if r.kind != KindPeriodicScalers {
		return PeriodicScalers{}, false
	}

	return PeriodicScalers{data: r.data}, true
}

// AsPhysicsEvent returns the opaque physics payload if the item is a PhysicsEvent.
func (r RingItem) AsPhysicsEvent() (PhysicsEvent, bool) {
	if r.kind != KindPhysicsEvent {
		return PhysicsEvent{}, false
	}

	return PhysicsEvent{data: r.data}, true
}

// AsPhysicsEventCount returns the event count view if the item is a PhysicsEventCount.
func (r RingItem) AsPhysicsEventCount() (PhysicsEventCount, bool) {
	if r.kind != KindPhysicsEventCount {
		return PhysicsEventCount{}, false
	}

	return PhysicsEventCount{data: r.data}, true
}

// AsEvbFragment returns the fragment payload if the item is an EvbFragment.
func (r RingItem) AsEvbFragment() (EvbFragment, bool) {
	if r.kind != KindEvbFragment {
		return EvbFragment{}, false
	}

	return EvbFragment{data: r.data}, true
}

// AsEvbUnknownPayload returns the fragment payload if the item is an EvbUnknownPayload.
func (r RingItem) AsEvbUnknownPayload() (EvbUnknownPayload, bool) {
	if r.kind != KindEvbUnknownPayload {
		return EvbUnknownPayload{}, false
	}

	return EvbUnknownPayload{data: r.data}, true
}

// AsEvbGlomInfo returns the glom parameters view if the item is an EvbGlomInfo.
func (r RingItem) AsEvbGlomInfo() (EvbGlomInfo, bool) {
	if r.kind != KindEvbGlomInfo {
		return EvbGlomInfo{}, false
	}

	return EvbGlomInfo{data: r.data}, true
}

// AsUserItem returns the opaque payload if the type id is in the user item range.
func (r RingItem) AsUserItem() (UserItem, bool) {
	if r.kind != KindUserItem {
		return UserItem{}, false
	}

	return UserItem{typ: r.typ, data: r.data}, true
}

func (r RingItem) stateChange(k Kind) (StateChange, bool) {
	if r.kind != k {
		return StateChange{}, false
	}

	return StateChange{data: r.data}, true
}

func (r RingItem) text(k Kind) (Text, bool) {
	if r.kind != k {
		return Text{}, false
	}

	return Text{data: r.data}, true
}
