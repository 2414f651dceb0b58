package section

// Event framing. Offsets are relative to the first byte of the event.
const (
	LengthOffset     = 0  // u32 total event length, including the length field itself
	TypeOffset       = 4  // u32 item type identifier
	BodyHeaderOffset = 8  // start of the body header size field
	FrameSize        = 8  // length + type
	MinEventSize     = 12 // framing plus the body header size field
)

// Body header layout. Offsets are relative to the body header start.
const (
	BodyHeaderSizeAbsent  = 0  // declared size of a header carrying no fields
	BodyHeaderSizePresent = 20 // declared size of a full header
	BodyHeaderSizeField   = 4  // bytes occupied by the size field alone

	BodyHeaderTimestampOffset   = 4  // u64
	BodyHeaderSourceIDOffset    = 12 // u32
	BodyHeaderBarrierTypeOffset = 16 // u32
)

// Payload layouts. Offsets are relative to the payload start, which follows
// the body header.
const (
	// State change (BeginRun .. AbnormalEndRun).
	StateChangeRunNumberOffset     = 0
	StateChangeTimeOffsetOffset    = 4
	StateChangeTimestampOffset     = 8
	StateChangeOffsetDivisorOffset = 12
	StateChangeTitleOffset         = 16
	StateChangeTitleSize           = 80
	StateChangeSize                = StateChangeTitleOffset + StateChangeTitleSize

	// Text lists (PacketTypes, MonitoredVariables).
	TextTimeOffsetOffset    = 0
	TextTimestampOffset     = 4
	TextStringCountOffset   = 8
	TextOffsetDivisorOffset = 12
	TextStringsOffset       = 16

	// RingFormat.
	RingFormatMajorOffset = 0 // u16
	RingFormatMinorOffset = 2 // u16
	RingFormatSize        = 4

	// PeriodicScalers.
	ScalersIntervalStartOffset = 0
	ScalersIntervalEndOffset   = 4
	ScalersTimestampOffset     = 8
	ScalersIntervalDivisor     = 12
	ScalersCountOffset         = 16
	ScalersIncrementalOffset   = 20
	ScalersValuesOffset        = 24
	ScalersHeaderSize          = ScalersValuesOffset
	ScalerWidth                = 4

	// PhysicsEventCount.
	EventCountTimeOffsetOffset    = 0
	EventCountOffsetDivisorOffset = 4
	EventCountTimestampOffset     = 8
	EventCountCountOffset         = 12 // u64
	EventCountSize                = 20

	// EvbGlomInfo.
	GlomCoincidentTicksOffset = 0  // u64
	GlomIsBuildingOffset      = 8  // u16
	GlomTimestampPolicyOffset = 10 // u16
	GlomInfoSize              = 12
)
