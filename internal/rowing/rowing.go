// Package rowing ingests telemetry from the rowing machine. A bridge device
// listens to the rower's Bluetooth FTMS service and POSTs the decoded frames
// here; the rest of the app only ever reads the latest snapshot.
package rowing

import (
	"encoding/binary"
	"fmt"
	"time"
)

// Snapshot is one decoded Rower Data reading.
type Snapshot struct {
	StrokeRate  float64   `json:"strokeRate"`            // strokes per minute
	StrokeCount int       `json:"strokeCount"`           // total strokes
	Distance    int       `json:"distance"`              // meters
	Duration    int       `json:"duration"`              // elapsed seconds
	Pace        int       `json:"pace"`                  // seconds per 500 m
	Resistance  int       `json:"resistance"`            // machine resistance level
	Calories    int       `json:"calories"`              // total kcal
	HeartRate   int       `json:"heartRate,omitempty"`   // bpm, 0 when absent
	Power       int       `json:"power,omitempty"`       // watts, 0 when absent
	Timestamp   time.Time `json:"timestamp"`
}

// Flag bits of the FTMS Rower Data characteristic (GATT 0x2AD1).
const (
	flagMoreData       = 1 << 0 // unset means stroke fields are present
	flagAverageStroke  = 1 << 1
	flagTotalDistance  = 1 << 2
	flagInstantPace    = 1 << 3
	flagAveragePace    = 1 << 4
	flagInstantPower   = 1 << 5
	flagAveragePower   = 1 << 6
	flagResistance     = 1 << 7
	flagExpendedEnergy = 1 << 8
	flagHeartRate      = 1 << 9
	flagMetabolicEquiv = 1 << 10
	flagElapsedTime    = 1 << 11
	flagRemainingTime  = 1 << 12
)

// ParseRowerData decodes an FTMS Rower Data frame. The two leading flag
// bytes select which fields follow; stroke rate comes in half-unit
// resolution and pace in seconds per 500 m.
func ParseRowerData(frame []byte, now time.Time) (Snapshot, error) {
	r := frameReader{data: frame}
	flags, err := r.uint16()
	if err != nil {
		return Snapshot{}, fmt.Errorf("read flags: %w", err)
	}

	snap := Snapshot{Timestamp: now}

	if flags&flagMoreData == 0 {
		rate, err := r.uint8()
		if err != nil {
			return Snapshot{}, fmt.Errorf("read stroke rate: %w", err)
		}
		snap.StrokeRate = float64(rate) / 2
		count, err := r.uint16()
		if err != nil {
			return Snapshot{}, fmt.Errorf("read stroke count: %w", err)
		}
		snap.StrokeCount = int(count)
	}
	if flags&flagAverageStroke != 0 {
		if _, err := r.uint8(); err != nil {
			return Snapshot{}, fmt.Errorf("read average stroke rate: %w", err)
		}
	}
	if flags&flagTotalDistance != 0 {
		distance, err := r.uint24()
		if err != nil {
			return Snapshot{}, fmt.Errorf("read distance: %w", err)
		}
		snap.Distance = int(distance)
	}
	if flags&flagInstantPace != 0 {
		pace, err := r.uint16()
		if err != nil {
			return Snapshot{}, fmt.Errorf("read pace: %w", err)
		}
		snap.Pace = int(pace)
	}
	if flags&flagAveragePace != 0 {
		if _, err := r.uint16(); err != nil {
			return Snapshot{}, fmt.Errorf("read average pace: %w", err)
		}
	}
	if flags&flagInstantPower != 0 {
		power, err := r.uint16()
		if err != nil {
			return Snapshot{}, fmt.Errorf("read power: %w", err)
		}
		snap.Power = int(int16(power))
	}
	if flags&flagAveragePower != 0 {
		if _, err := r.uint16(); err != nil {
			return Snapshot{}, fmt.Errorf("read average power: %w", err)
		}
	}
	if flags&flagResistance != 0 {
		resistance, err := r.uint16()
		if err != nil {
			return Snapshot{}, fmt.Errorf("read resistance: %w", err)
		}
		snap.Resistance = int(int16(resistance))
	}
	if flags&flagExpendedEnergy != 0 {
		total, err := r.uint16()
		if err != nil {
			return Snapshot{}, fmt.Errorf("read total energy: %w", err)
		}
		snap.Calories = int(total)
		// Energy per hour and per minute are not kept.
		if _, err := r.uint16(); err != nil {
			return Snapshot{}, fmt.Errorf("read energy per hour: %w", err)
		}
		if _, err := r.uint8(); err != nil {
			return Snapshot{}, fmt.Errorf("read energy per minute: %w", err)
		}
	}
	if flags&flagHeartRate != 0 {
		hr, err := r.uint8()
		if err != nil {
			return Snapshot{}, fmt.Errorf("read heart rate: %w", err)
		}
		snap.HeartRate = int(hr)
	}
	if flags&flagMetabolicEquiv != 0 {
		if _, err := r.uint8(); err != nil {
			return Snapshot{}, fmt.Errorf("read metabolic equivalent: %w", err)
		}
	}
	if flags&flagElapsedTime != 0 {
		elapsed, err := r.uint16()
		if err != nil {
			return Snapshot{}, fmt.Errorf("read elapsed time: %w", err)
		}
		snap.Duration = int(elapsed)
	}
	if flags&flagRemainingTime != 0 {
		if _, err := r.uint16(); err != nil {
			return Snapshot{}, fmt.Errorf("read remaining time: %w", err)
		}
	}
	return snap, nil
}

type frameReader struct {
	data   []byte
	offset int
}

func (r *frameReader) uint8() (uint8, error) {
	if r.offset+1 > len(r.data) {
		return 0, fmt.Errorf("frame truncated at byte %d", r.offset)
	}
	v := r.data[r.offset]
	r.offset++
	return v, nil
}

func (r *frameReader) uint16() (uint16, error) {
	if r.offset+2 > len(r.data) {
		return 0, fmt.Errorf("frame truncated at byte %d", r.offset)
	}
	v := binary.LittleEndian.Uint16(r.data[r.offset:])
	r.offset += 2
	return v, nil
}

func (r *frameReader) uint24() (uint32, error) {
	if r.offset+3 > len(r.data) {
		return 0, fmt.Errorf("frame truncated at byte %d", r.offset)
	}
	b := r.data[r.offset:]
	v := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16
	r.offset += 3
	return v, nil
}
