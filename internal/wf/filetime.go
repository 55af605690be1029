package wf

import "time"

// Filetime is a 64-bit timestamp counting 100-nanosecond intervals
// since 1601-01-01 UTC, the time representation of the emulated API.
type Filetime uint64

// filetimeEpochDiff is the number of 100ns intervals between the
// 1601-01-01 and 1970-01-01 epochs.
const filetimeEpochDiff = 116444736000000000

// FiletimeFromTime converts a Go time to a Filetime. Times before the
// Unix epoch clamp to the epoch difference rather than wrapping.
func FiletimeFromTime(t time.Time) Filetime {
	sec := t.Unix()
	if sec < 0 {
		return Filetime(filetimeEpochDiff)
	}
	return Filetime(uint64(sec)*10_000_000 + uint64(t.Nanosecond()/100) + filetimeEpochDiff)
}

// High returns the most significant 32 bits.
func (ft Filetime) High() uint32 { return uint32(ft >> 32) }

// Low returns the least significant 32 bits.
func (ft Filetime) Low() uint32 { return uint32(ft & 0xFFFFFFFF) }

// Time converts back to a Go time in UTC.
func (ft Filetime) Time() time.Time {
	ticks := uint64(ft) - filetimeEpochDiff
	return time.Unix(int64(ticks/10_000_000), int64(ticks%10_000_000)*100).UTC()
}
