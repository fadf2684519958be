package exfat

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/dsoprea/go-logging"
	"github.com/dustin/go-humanize"
)

var (
	layoutLogger = log.NewLogger("exfat.layout")
)

var (
	ErrVolumeTooSmall = errors.New("volume too small")
)

// VolumeTooSmallError is returned when the metadata regions do not fit on the
// device.
type VolumeTooSmallError struct {
	Required  uint64
	Available uint64
}

func (vtse *VolumeTooSmallError) Error() string {
	return fmt.Sprintf("%s: need at least (%s) but device is (%s)", ErrVolumeTooSmall, humanize.IBytes(vtse.Required), humanize.IBytes(vtse.Available))
}

func (vtse *VolumeTooSmallError) Unwrap() error {
	return ErrVolumeTooSmall
}

// RegionRegistry holds exactly one instance of every region. It is built once
// and only read afterwards. Sizes and positions are derived on every query.
type RegionRegistry struct {
	vp      VolumeParameters
	regions [regionCount]Region
}

// NewRegionRegistry builds all regions from the parameters.
func NewRegionRegistry(vp VolumeParameters) *RegionRegistry {
	rr := &RegionRegistry{
		vp: vp,
	}

	for _, id := range RegionIds {
		rr.regions[id] = newRegion(id, vp)
	}

	return rr
}

// Parameters returns the volume parameters that the regions were built from.
func (rr *RegionRegistry) Parameters() VolumeParameters {
	return rr.vp
}

// Region returns the region for the given id.
func (rr *RegionRegistry) Region(id RegionId) Region {
	if id < 0 || int(id) >= len(rr.regions) {
		log.Panicf("unknown region: (%d)", int(id))
	}

	return rr.regions[id]
}

// SizeOf returns the byte-size of the given region.
func (rr *RegionRegistry) SizeOf(id RegionId) uint64 {
	return rr.Region(id).Size(rr)
}

// PositionOf returns the aligned byte-offset that the given region starts at.
func (rr *RegionRegistry) PositionOf(id RegionId) uint64 {
	position := uint64(0)
	for _, currentId := range RegionIds {
		r := rr.regions[currentId]

		position = roundUp(position, r.Alignment())
		if currentId == id {
			return position
		}

		position += r.Size(rr)
	}

	log.Panicf("region not in layout: %s", id)
	return 0
}

// End returns the offset just past the last region.
func (rr *RegionRegistry) End() uint64 {
	position := uint64(0)
	for _, id := range RegionIds {
		r := rr.regions[id]

		position = roundUp(position, r.Alignment())
		position += r.Size(rr)
	}

	return position
}

// CheckCapacity returns a VolumeTooSmallError if the regions would run past
// `volumeSize`. No I/O is done.
func (rr *RegionRegistry) CheckCapacity(volumeSize uint64) (err error) {
	defer func() {
		if errRaw := recover(); errRaw != nil {
			var ok bool
			if err, ok = errRaw.(error); ok == true {
				err = log.Wrap(err)
			} else {
				err = log.Errorf("Error not an error: [%s] [%v]", reflect.TypeOf(errRaw).Name(), errRaw)
			}
		}
	}()

	end := rr.End()
	if end > volumeSize {
		log.Panic(&VolumeTooSmallError{Required: end, Available: volumeSize})
	}

	return nil
}

// RegionLayout describes where a region was placed.
type RegionLayout struct {
	Id        RegionId
	Alignment uint64
	Size      uint64
	Position  uint64
}

func (rl RegionLayout) String() string {
	return fmt.Sprintf("RegionLayout<ID=[%s] ALIGNMENT=(0x%x) SIZE=(0x%x) POSITION=(0x%x)>", rl.Id, rl.Alignment, rl.Size, rl.Position)
}

// Layout returns the resolved placement of every region in order.
func (rr *RegionRegistry) Layout() []RegionLayout {
	layout := make([]RegionLayout, len(RegionIds))
	for i, id := range RegionIds {
		r := rr.regions[id]

		layout[i] = RegionLayout{
			Id:        id,
			Alignment: r.Alignment(),
			Size:      r.Size(rr),
			Position:  rr.PositionOf(id),
		}
	}

	return layout
}

// Dump logs the parameters and the resolved layout at the debug level.
func (rr *RegionRegistry) Dump() {
	layoutLogger.Debugf(nil, "%s", rr.vp)

	for _, rl := range rr.Layout() {
		layoutLogger.Debugf(nil, "%s", rl)
	}
}
