package exfat

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"encoding/binary"

	"github.com/dsoprea/go-logging"
	"github.com/dustin/go-humanize"
	"golang.org/x/text/encoding/unicode"
)

const (
	// DefaultSectorBits is the sector-size shift that the tools format with
	// (512-byte sectors).
	DefaultSectorBits = 9

	minSectorBits = 9
	maxSectorBits = 12

	// Clusters can not exceed 32M.
	maxClusterBits = 25

	// AutomaticClusterBits asks for the cluster-size to be chosen from the
	// volume-size.
	AutomaticClusterBits = -1

	// VolumeLabelMaxLength is the maximum number of UTF-16 code-units in a
	// volume label.
	VolumeLabelMaxLength = 15

	firstDataCluster = 2
	lastDataCluster  = 0xfffffff6
)

var (
	ErrInvalidSectorSize   = errors.New("sector-size must be between 512 and 4096 bytes")
	ErrClusterSizeTooSmall = errors.New("cluster-size too small for volume")
	ErrClusterSizeTooLarge = errors.New("cluster-size exceeds 32M")
	ErrLabelTooLong        = errors.New("volume label too long")
)

var (
	defaultEncoding = binary.LittleEndian
)

// ParameterError describes a formatting parameter that can not be used.
type ParameterError struct {
	Parameter string
	Value     interface{}
	Reason    error
	Hint      string
}

func (pe *ParameterError) Error() string {
	message := fmt.Sprintf("invalid %s [%v]: %s", pe.Parameter, pe.Value, pe.Reason)
	if pe.Hint != "" {
		message += " (" + pe.Hint + ")"
	}

	return message
}

func (pe *ParameterError) Unwrap() error {
	return pe.Reason
}

// VolumeParameters is the complete, immutable set of inputs to the formatter.
// It is copied into every region.
type VolumeParameters struct {
	// SectorBits is log2 of the sector-size.
	SectorBits uint8

	// SpcBits is log2 of the sectors-per-cluster.
	SpcBits uint8

	// VolumeSize is the size of the whole volume in bytes.
	VolumeSize uint64

	// Label is the UTF-16 volume label. Only the first LabelLength units are
	// significant.
	Label       [VolumeLabelMaxLength]uint16
	LabelLength int

	Serial uint32

	// FirstSector is the partition offset recorded in the super-block.
	FirstSector uint64
}

// NewVolumeParameters validates the user-facing inputs and derives the rest.
// `spcBits` may be AutomaticClusterBits and `serial` may be zero, in which case
// a time-based serial is generated.
func NewVolumeParameters(sectorBits uint8, spcBits int, volumeSize uint64, label string, serial uint32, firstSector uint64) (vp VolumeParameters, err error) {
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

	if sectorBits < minSectorBits || sectorBits > maxSectorBits {
		log.Panic(&ParameterError{Parameter: "sector-size", Value: uint64(1) << sectorBits, Reason: ErrInvalidSectorSize})
	}

	resolvedSpcBits, err := ClusterShiftForVolume(sectorBits, spcBits, volumeSize)
	log.PanicIf(err)

	encodedLabel, labelLength, err := EncodeVolumeLabel(label)
	log.PanicIf(err)

	if serial == 0 {
		serial = DefaultVolumeSerial(time.Now())
	}

	vp = VolumeParameters{
		SectorBits:  sectorBits,
		SpcBits:     resolvedSpcBits,
		VolumeSize:  volumeSize,
		Label:       encodedLabel,
		LabelLength: labelLength,
		Serial:      serial,
		FirstSector: firstSector,
	}

	return vp, nil
}

// SectorSize returns the sector-size in bytes.
func (vp VolumeParameters) SectorSize() uint64 {
	return uint64(1) << vp.SectorBits
}

// SectorsPerCluster returns the number of sectors in one cluster.
func (vp VolumeParameters) SectorsPerCluster() uint64 {
	return uint64(1) << vp.SpcBits
}

// ClusterSize returns the cluster-size in bytes.
func (vp VolumeParameters) ClusterSize() uint64 {
	return vp.SectorSize() << vp.SpcBits
}

// LabelString returns the label as a Go string.
func (vp VolumeParameters) LabelString() string {
	return DecodeVolumeLabel(vp.Label[:vp.LabelLength])
}

func (vp VolumeParameters) String() string {
	return fmt.Sprintf("VolumeParameters<SECTOR-SIZE=(%d) CLUSTER-SIZE=(%d) VOLUME-SIZE=(%d) LABEL=[%s] SERIAL=(0x%08x) FIRST-SECTOR=(%d)>", vp.SectorSize(), vp.ClusterSize(), vp.VolumeSize, vp.LabelString(), vp.Serial, vp.FirstSector)
}

// ClusterShiftForVolume returns the sectors-per-cluster shift to format the
// volume with. If `requested` is AutomaticClusterBits then the size is chosen
// from the volume-size: 4K under 256M, 32K under 32G, and otherwise the
// smallest cluster (from 128K) that keeps the cluster-count addressable.
func ClusterShiftForVolume(sectorBits uint8, requested int, volumeSize uint64) (spcBits uint8, err error) {
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

	if requested != AutomaticClusterBits {
		if requested < 0 || int(sectorBits)+requested > maxClusterBits {
			log.Panic(&ParameterError{Parameter: "sectors-per-cluster", Value: requested, Reason: ErrClusterSizeTooLarge})
		}

		clusterSize := (uint64(1) << sectorBits) << uint(requested)
		if volumeSize/clusterSize > lastDataCluster {
			suggested, err := ClusterShiftForVolume(sectorBits, AutomaticClusterBits, volumeSize)
			log.PanicIf(err)

			pe := &ParameterError{
				Parameter: "cluster-size",
				Value:     humanize.IBytes(clusterSize),
				Reason:    ErrClusterSizeTooSmall,
				Hint:      fmt.Sprintf("%s volume, try -s %d", humanize.IBytes(volumeSize), 1<<suggested),
			}

			log.Panic(pe)
		}

		return uint8(requested), nil
	}

	if volumeSize < 256*1024*1024 {
		return shiftAbove(12, sectorBits), nil
	} else if volumeSize < 32*1024*1024*1024 {
		return shiftAbove(15, sectorBits), nil
	}

	for i := uint8(17); ; i++ {
		if (volumeSize+(uint64(1)<<i)-1)>>i <= lastDataCluster {
			return shiftAbove(i, sectorBits), nil
		}
	}
}

func shiftAbove(clusterBits, sectorBits uint8) uint8 {
	if clusterBits < sectorBits {
		return 0
	}

	return clusterBits - sectorBits
}

// EncodeVolumeLabel converts the label to the UTF-16 form stored on disk.
func EncodeVolumeLabel(label string) (encoded [VolumeLabelMaxLength]uint16, length int, err error) {
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

	if label == "" {
		return encoded, 0, nil
	}

	encoder := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder()

	raw, err := encoder.Bytes([]byte(label))
	log.PanicIf(err)

	length = len(raw) / 2
	if length > VolumeLabelMaxLength {
		log.Panic(&ParameterError{Parameter: "volume label", Value: label, Reason: ErrLabelTooLong})
	}

	for i := 0; i < length; i++ {
		encoded[i] = defaultEncoding.Uint16(raw[i*2:])
	}

	return encoded, length, nil
}

// DecodeVolumeLabel converts UTF-16 code-units to a string. Decoding stops at
// the first NUL.
func DecodeVolumeLabel(units []uint16) string {
	raw := make([]byte, 0, len(units)*2)
	for _, unit := range units {
		if unit == 0 {
			break
		}

		raw = append(raw, byte(unit), byte(unit>>8))
	}

	decoder := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()

	decoded, err := decoder.Bytes(raw)
	log.PanicIf(err)

	return string(decoded)
}

// DefaultVolumeSerial derives a serial-number from the time.
func DefaultVolumeSerial(now time.Time) uint32 {
	seconds := uint32(now.Unix())
	microseconds := uint32(now.Nanosecond() / 1000)

	return seconds<<20 | microseconds
}
