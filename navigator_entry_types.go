package exfat

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/dsoprea/go-logging"
	"github.com/go-restruct/restruct"
)

// EntryType is the first byte of every directory-entry.
type EntryType uint8

const (
	EntryTypeEndOfDirectory   EntryType = 0x00
	EntryTypeAllocationBitmap EntryType = 0x81
	EntryTypeUpcaseTable      EntryType = 0x82
	EntryTypeVolumeLabel      EntryType = 0x83
	EntryTypeFile             EntryType = 0x85
	EntryTypeStreamExtension  EntryType = 0xc0
	EntryTypeFileName         EntryType = 0xc1

	// entryTypeInUse is the InUse bit of the entry-type.
	entryTypeInUse EntryType = 0x80
)

func (et EntryType) IsEndOfDirectory() bool {
	return et == EntryTypeEndOfDirectory
}

func (et EntryType) IsUnusedEntryMarker() bool {
	return et >= 0x01 && et <= 0x7f
}

func (et EntryType) IsRegular() bool {
	return et >= 0x81 && et <= 0xff
}

func (et EntryType) TypeCode() int {
	return int(et & 31)
}

func (et EntryType) TypeImportance() bool {
	return et&32 > 0
}

func (et EntryType) IsCritical() bool {
	return et.TypeImportance() == false
}

func (et EntryType) IsBenign() bool {
	return et.TypeImportance() == true
}

func (et EntryType) TypeCategory() bool {
	return et&64 > 0
}

func (et EntryType) IsPrimary() bool {
	return et.TypeCategory() == false
}

func (et EntryType) IsSecondary() bool {
	return et.TypeCategory() == true
}

func (et EntryType) IsInUse() bool {
	return et&entryTypeInUse > 0
}

// InUse returns the same entry-type with the InUse bit set.
func (et EntryType) InUse() EntryType {
	return et | entryTypeInUse
}

// NotInUse returns the same entry-type with the InUse bit cleared.
func (et EntryType) NotInUse() EntryType {
	return et &^ entryTypeInUse
}

func (et EntryType) Dump() {
	fmt.Printf("Entry Type\n")
	fmt.Printf("==========\n")
	fmt.Printf("\n")

	fmt.Printf("TypeCode: (%d)\n", et.TypeCode())
	fmt.Printf("\n")

	fmt.Printf("TypeImportance: [%v]\n", et.TypeImportance())
	fmt.Printf("- IsCritical: [%v]\n", et.IsCritical())
	fmt.Printf("- IsBenign: [%v]\n", et.IsBenign())
	fmt.Printf("\n")

	fmt.Printf("TypeCategory: [%v]\n", et.TypeCategory())
	fmt.Printf("- IsPrimary: [%v]\n", et.IsPrimary())
	fmt.Printf("- IsSecondary: [%v]\n", et.IsSecondary())
	fmt.Printf("\n")

	fmt.Printf("IsInUse: [%v]\n", et.IsInUse())
	fmt.Printf("\n")

	fmt.Printf("Entry-Type Classes\n")
	fmt.Printf("- IsEndOfDirectory: [%v]\n", et.IsEndOfDirectory())
	fmt.Printf("- IsUnusedEntryMarker: [%v]\n", et.IsUnusedEntryMarker())
	fmt.Printf("- IsRegular: [%v]\n", et.IsRegular())
	fmt.Printf("\n")
}

func (et EntryType) String() string {
	return fmt.Sprintf("EntryType<TYPE-CODE=(%d) IS-CRITICAL=[%v] IS-PRIMARY=[%v] IS-IN-USE=[%v] X-IS-REGULAR=[%v] X-IS-UNUSED=[%v] X-IS-END=[%v]>", et.TypeCode(), et.IsCritical(), et.IsPrimary(), et.IsInUse(), et.IsRegular(), et.IsUnusedEntryMarker(), et.IsEndOfDirectory())
}

// DirectoryEntryParserKey describes the combination of attributes that uniquely
// identify an entry-type (`isCritical` corresponds directly to
// `TypeImportance` and `isPrimary` corresponds directly to `TypeCategory`).
type DirectoryEntryParserKey struct {
	typeCode   int
	isCritical bool
	isPrimary  bool
}

func (depk DirectoryEntryParserKey) String() string {
	return fmt.Sprintf("DirectoryEntryParserKey<TYPE-CODE=(%d) IS-CRITICAL=[%v] IS-PRIMARY=[%v]>", depk.typeCode, depk.isCritical, depk.isPrimary)
}

var (
	// directoryEntryParsers expresses all of the standard entry-types.
	directoryEntryParsers = map[DirectoryEntryParserKey]reflect.Type{

		//// Critical primary

		DirectoryEntryParserKey{typeCode: 1, isCritical: true, isPrimary: true}: reflect.TypeOf(ExfatAllocationBitmapDirectoryEntry{}),
		DirectoryEntryParserKey{typeCode: 2, isCritical: true, isPrimary: true}: reflect.TypeOf(ExfatUpcaseTableDirectoryEntry{}),
		DirectoryEntryParserKey{typeCode: 3, isCritical: true, isPrimary: true}: reflect.TypeOf(ExfatVolumeLabelDirectoryEntry{}),
		DirectoryEntryParserKey{typeCode: 5, isCritical: true, isPrimary: true}: reflect.TypeOf(ExfatFileDirectoryEntry{}),

		//// Benign primary

		DirectoryEntryParserKey{typeCode: 0, isCritical: false, isPrimary: true}: reflect.TypeOf(ExfatVolumeGuidDirectoryEntry{}),
		DirectoryEntryParserKey{typeCode: 1, isCritical: false, isPrimary: true}: reflect.TypeOf(ExfatTexFATDirectoryEntry{}),

		//// Critical secondary

		DirectoryEntryParserKey{typeCode: 0, isCritical: true, isPrimary: false}: reflect.TypeOf(ExfatStreamExtensionDirectoryEntry{}),
		DirectoryEntryParserKey{typeCode: 1, isCritical: true, isPrimary: false}: reflect.TypeOf(ExfatFileNameDirectoryEntry{}),

		//// Benign secondary

		DirectoryEntryParserKey{typeCode: 0, isCritical: false, isPrimary: false}: reflect.TypeOf(ExfatVendorExtensionDirectoryEntry{}),
		DirectoryEntryParserKey{typeCode: 1, isCritical: false, isPrimary: false}: reflect.TypeOf(ExfatVendorAllocationDirectoryEntry{}),
	}
)

type DirectoryEntry interface {
	TypeName() string
}

type PrimaryDirectoryEntry interface {
	SecondaryCount() uint8
}

// ExfatPrimaryDirectoryEntry is the generic template that primary entries
// derive from.
type ExfatPrimaryDirectoryEntry struct {
	EntryType EntryType

	// SecondaryCount_ is the number of secondary entries that immediately
	// follow.
	SecondaryCount_ uint8

	// SetChecksum covers the whole entry set, less this field.
	SetChecksum uint16

	GeneralPrimaryFlags uint16
	CustomDefined       [14]byte

	FirstCluster uint32
	DataLength   uint64
}

func (sde ExfatPrimaryDirectoryEntry) String() string {
	return fmt.Sprintf("PrimaryDirectoryEntry<TYPE=(%d) SECONDARY-COUNT=(%d) FIRST-CLUSTER=(%d) DATA-LENGTH=(%d)>", sde.EntryType, sde.SecondaryCount_, sde.FirstCluster, sde.DataLength)
}

func (sde ExfatPrimaryDirectoryEntry) Dump() {
	fmt.Printf("Primary Directory Entry\n")
	fmt.Printf("=======================\n")
	fmt.Printf("\n")

	fmt.Printf("EntryType: (%d) [%08b]\n", sde.EntryType, sde.EntryType)
	fmt.Printf("SecondaryCount: (%d)\n", sde.SecondaryCount_)
	fmt.Printf("SetChecksum: (%04x)\n", sde.SetChecksum)
	fmt.Printf("GeneralPrimaryFlags: (%04x)\n", sde.GeneralPrimaryFlags)
	fmt.Printf("FirstCluster: (%d)\n", sde.FirstCluster)
	fmt.Printf("DataLength: (%d)\n", sde.DataLength)

	fmt.Printf("\n")
}

func (sde ExfatPrimaryDirectoryEntry) SecondaryCount() uint8 {
	return sde.SecondaryCount_
}

func (ExfatPrimaryDirectoryEntry) TypeName() string {
	return "_Primary"
}

// ExfatSecondaryDirectoryEntry is the generic template that secondary entries
// derive from.
type ExfatSecondaryDirectoryEntry struct {
	EntryType             EntryType
	GeneralSecondaryFlags uint8
	CustomDefined         [18]byte
	FirstCluster          uint32
	DataLength            uint64
}

func (sde ExfatSecondaryDirectoryEntry) String() string {
	return fmt.Sprintf("SecondaryDirectoryEntry<TYPE=(%d) FIRST-CLUSTER=(%d) DATA-LENGTH=(%d)>", sde.EntryType, sde.FirstCluster, sde.DataLength)
}

func (ExfatSecondaryDirectoryEntry) TypeName() string {
	return "_Secondary"
}

// ExfatTimestamp is a packed local date and time with two-second resolution.
type ExfatTimestamp uint32

// Second returns the seconds. The field stores two-second units.
func (et ExfatTimestamp) Second() int {
	return int(et&31) * 2
}

func (et ExfatTimestamp) Minute() int {
	return int(et&2016) >> 5
}

func (et ExfatTimestamp) Hour() int {
	return int(et&63488) >> 11
}

func (et ExfatTimestamp) Day() int {
	return int(et&2031616) >> 16
}

func (et ExfatTimestamp) Month() int {
	return int(et&31457280) >> 21
}

func (et ExfatTimestamp) Year() int {
	return 1980 + int(et&4261412864)>>25
}

func (et ExfatTimestamp) Timestamp() time.Time {
	return time.Date(et.Year(), time.Month(et.Month()), et.Day(), et.Hour(), et.Minute(), et.Second(), 0, time.Local)
}

func (et ExfatTimestamp) String() string {
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d", et.Year(), et.Month(), et.Day(), et.Hour(), et.Minute(), et.Second())
}

type FileAttributes uint16

func (fa FileAttributes) IsReadOnly() bool {
	return fa&1 > 0
}

func (fa FileAttributes) IsHidden() bool {
	return fa&2 > 0
}

func (fa FileAttributes) IsSystem() bool {
	return fa&4 > 0
}

func (fa FileAttributes) IsDirectory() bool {
	return fa&16 > 0
}

func (fa FileAttributes) IsArchive() bool {
	return fa&32 > 0
}

func (fa FileAttributes) String() string {
	return fmt.Sprintf("FileAttributes<IS-READONLY=[%v] IS-HIDDEN=[%v] IS-SYSTEM=[%v] IS-DIRECTORY=[%v] IS-ARCHIVE=[%v]>",
		fa.IsReadOnly(), fa.IsHidden(), fa.IsSystem(), fa.IsDirectory(), fa.IsArchive())
}

// DumpBareIndented prints the attributes with arbitrary indentation.
func (fa FileAttributes) DumpBareIndented(indent string) {
	fmt.Printf("%sIsReadOnly: [%v]\n", indent, fa.IsReadOnly())
	fmt.Printf("%sIsHidden: [%v]\n", indent, fa.IsHidden())
	fmt.Printf("%sIsSystem: [%v]\n", indent, fa.IsSystem())
	fmt.Printf("%sIsDirectory: [%v]\n", indent, fa.IsDirectory())
	fmt.Printf("%sIsArchive: [%v]\n", indent, fa.IsArchive())
}

type ExfatFileDirectoryEntry struct {
	EntryType       EntryType
	SecondaryCount_ uint8
	SetChecksum     uint16
	FileAttributes  FileAttributes
	Reserved1       uint16

	CreateTimestamp       ExfatTimestamp
	LastModifiedTimestamp ExfatTimestamp
	LastAccessedTimestamp ExfatTimestamp

	Create10msIncrement       uint8
	LastModified10msIncrement uint8

	CreateUtcOffset       uint8
	LastModifiedUtcOffset uint8
	LastAccessedUtcOffset uint8

	Reserved2 [7]byte
}

func (fdf ExfatFileDirectoryEntry) String() string {
	return fmt.Sprintf("FileDirectoryEntry<SECONDARY-COUNT=(%d) CTIME=[%s] MTIME=[%s] ATIME=[%s]>",
		fdf.SecondaryCount_,
		fdf.CreateTimestamp, fdf.LastModifiedTimestamp, fdf.LastAccessedTimestamp)
}

func (fdf ExfatFileDirectoryEntry) SecondaryCount() uint8 {
	return fdf.SecondaryCount_
}

func (fdf ExfatFileDirectoryEntry) TypeName() string {
	return "File"
}

// ExfatAllocationBitmapDirectoryEntry locates the allocation bitmap.
type ExfatAllocationBitmapDirectoryEntry struct {
	EntryType EntryType

	// BitmapFlags bit 0 selects the bitmap for the second FAT.
	BitmapFlags uint8

	Reserved [18]byte

	FirstCluster uint32
	DataLength   uint64
}

// NewAllocationBitmapDirectoryEntry returns the entry for the bitmap of the
// first FAT.
func NewAllocationBitmapDirectoryEntry(firstCluster uint32, dataLength uint64) *ExfatAllocationBitmapDirectoryEntry {
	return &ExfatAllocationBitmapDirectoryEntry{
		EntryType:    EntryTypeAllocationBitmap,
		FirstCluster: firstCluster,
		DataLength:   dataLength,
	}
}

func (abde ExfatAllocationBitmapDirectoryEntry) String() string {
	return fmt.Sprintf("AllocationBitmapDirectoryEntry<BITMAP-FLAGS=[%08b] FIRST-CLUSTER=(%d) DATA-LENGTH=(%d)>", abde.BitmapFlags, abde.FirstCluster, abde.DataLength)
}

func (ExfatAllocationBitmapDirectoryEntry) TypeName() string {
	return "AllocationBitmap"
}

// ExfatUpcaseTableDirectoryEntry locates the up-case table.
type ExfatUpcaseTableDirectoryEntry struct {
	EntryType     EntryType
	Reserved1     [3]byte
	TableChecksum uint32
	Reserved2     [12]byte
	FirstCluster  uint32
	DataLength    uint64
}

func NewUpcaseTableDirectoryEntry(tableChecksum uint32, firstCluster uint32, dataLength uint64) *ExfatUpcaseTableDirectoryEntry {
	return &ExfatUpcaseTableDirectoryEntry{
		EntryType:     EntryTypeUpcaseTable,
		TableChecksum: tableChecksum,
		FirstCluster:  firstCluster,
		DataLength:    dataLength,
	}
}

func (utde ExfatUpcaseTableDirectoryEntry) String() string {
	return fmt.Sprintf("UpcaseTableDirectoryEntry<TABLE-CHECKSUM=[%08x] FIRST-CLUSTER=(%d) DATA-LENGTH=(%d)>", utde.TableChecksum, utde.FirstCluster, utde.DataLength)
}

func (ExfatUpcaseTableDirectoryEntry) TypeName() string {
	return "UpcaseTable"
}

// ExfatVolumeLabelDirectoryEntry holds the volume label. Tools use the
// reserved bytes after the label as well, so the label is fifteen UTF-16
// code-units long rather than eleven.
type ExfatVolumeLabelDirectoryEntry struct {
	EntryType      EntryType
	CharacterCount uint8
	VolumeLabel    [VolumeLabelMaxLength]uint16
}

// NewVolumeLabelDirectoryEntry returns the label entry. The entry is marked
// in-use only when the label is not empty.
func NewVolumeLabelDirectoryEntry(label [VolumeLabelMaxLength]uint16, length int) *ExfatVolumeLabelDirectoryEntry {
	entryType := EntryTypeVolumeLabel.NotInUse()
	if length > 0 {
		entryType = EntryTypeVolumeLabel
	}

	return &ExfatVolumeLabelDirectoryEntry{
		EntryType:      entryType,
		CharacterCount: uint8(length),
		VolumeLabel:    label,
	}
}

func (vlde ExfatVolumeLabelDirectoryEntry) Label() string {
	count := int(vlde.CharacterCount)
	if count > VolumeLabelMaxLength {
		count = VolumeLabelMaxLength
	}

	return DecodeVolumeLabel(vlde.VolumeLabel[:count])
}

func (vlde ExfatVolumeLabelDirectoryEntry) String() string {
	return fmt.Sprintf("VolumeLabelDirectoryEntry<CHARACTER-COUNT=(%d) LABEL=[%s]>", vlde.CharacterCount, vlde.Label())
}

func (ExfatVolumeLabelDirectoryEntry) TypeName() string {
	return "VolumeLabel"
}

type ExfatVolumeGuidDirectoryEntry struct {
	EntryType           EntryType
	SecondaryCount_     uint8
	SetChecksum         uint16
	GeneralPrimaryFlags uint16
	VolumeGuid          [16]byte
	Reserved            [10]byte
}

func (vgde ExfatVolumeGuidDirectoryEntry) String() string {
	return fmt.Sprintf("VolumeGuidDirectoryEntry<SECONDARY-COUNT=(%d) SET-CHECKSUM=(%04x) GENERAL-PRIMARY-FLAGS=(%016b) GUID=[%032x]>", vgde.SecondaryCount_, vgde.SetChecksum, vgde.GeneralPrimaryFlags, vgde.VolumeGuid)
}

func (vgde ExfatVolumeGuidDirectoryEntry) SecondaryCount() uint8 {
	return vgde.SecondaryCount_
}

func (ExfatVolumeGuidDirectoryEntry) TypeName() string {
	return "VolumeGuid"
}

// ExfatTexFATDirectoryEntry is opaque.
type ExfatTexFATDirectoryEntry struct {
	Reserved [32]byte
}

func (ExfatTexFATDirectoryEntry) String() string {
	return "TexFATDirectoryEntry<>"
}

func (ExfatTexFATDirectoryEntry) TypeName() string {
	return "TexFAT"
}

const (
	// GeneralSecondaryFlagNoFatChain means the allocation is contiguous and
	// the FAT is not used for it.
	GeneralSecondaryFlagNoFatChain = 0x02
)

type ExfatStreamExtensionDirectoryEntry struct {
	EntryType             EntryType
	GeneralSecondaryFlags uint8
	Reserved1             [1]byte
	NameLength            uint8
	NameHash              uint16
	Reserved2             [2]byte
	ValidDataLength       uint64
	Reserved3             [4]byte
	FirstCluster          uint32
	DataLength            uint64
}

// UsesFat indicates whether the cluster chain should be followed via the FAT.
func (sede ExfatStreamExtensionDirectoryEntry) UsesFat() bool {
	return sede.GeneralSecondaryFlags&GeneralSecondaryFlagNoFatChain == 0
}

func (sede ExfatStreamExtensionDirectoryEntry) String() string {
	return fmt.Sprintf("StreamExtensionDirectoryEntry<GENERAL-SECONDARY-FLAGS=(%08b) NAME-LENGTH=(%d) NAME-HASH=(%04x) VALID-DATA-LENGTH=(%d) FIRST-CLUSTER=(%d) DATA-LENGTH=(%d)>",
		sede.GeneralSecondaryFlags, sede.NameLength, sede.NameHash, sede.ValidDataLength, sede.FirstCluster, sede.DataLength)
}

func (ExfatStreamExtensionDirectoryEntry) TypeName() string {
	return "StreamExtension"
}

type ExfatFileNameDirectoryEntry struct {
	EntryType             EntryType
	GeneralSecondaryFlags uint8

	// FileName is fifteen UTF-16 code-units.
	FileName [30]byte
}

func (fnde ExfatFileNameDirectoryEntry) String() string {
	return fmt.Sprintf("FileNameDirectoryEntry<GENERAL-SECONDARY-FLAGS=(%08b) FILENAME=[%s]>", fnde.GeneralSecondaryFlags, UnicodeFromAscii(fnde.FileName[:], 15))
}

func (ExfatFileNameDirectoryEntry) TypeName() string {
	return "FileName"
}

// MultipartFilename is the list of secondary entries for a file, from which
// the name-entries are joined.
type MultipartFilename []DirectoryEntry

func (mf MultipartFilename) Filename() string {
	parts := make([]string, 0)

	for _, deRaw := range mf {
		if fnde, ok := deRaw.(*ExfatFileNameDirectoryEntry); ok == true {
			part := UnicodeFromAscii(fnde.FileName[:], 15)
			parts = append(parts, part)
		}
	}

	filename := strings.Join(parts, "")

	return filename
}

type ExfatVendorExtensionDirectoryEntry struct {
	EntryType             EntryType
	GeneralSecondaryFlags uint8
	VendorGuid            [16]byte
	VendorDefined         [14]byte
}

func (vede ExfatVendorExtensionDirectoryEntry) String() string {
	return fmt.Sprintf("VendorExtensionDirectoryEntry<GENERAL-SECONDARY-FLAGS=(%08b) GUID=(%032x)>", vede.GeneralSecondaryFlags, vede.VendorGuid)
}

func (ExfatVendorExtensionDirectoryEntry) TypeName() string {
	return "VendorExtension"
}

type ExfatVendorAllocationDirectoryEntry struct {
	EntryType             EntryType
	GeneralSecondaryFlags uint8
	VendorGuid            [16]byte
	VendorDefined         [2]byte
	FirstCluster          uint32
	DataLength            uint64
}

func (vade ExfatVendorAllocationDirectoryEntry) String() string {
	return fmt.Sprintf("VendorAllocationDirectoryEntry<GENERAL-SECONDARY-FLAGS=(%08b) GUID=(%032x) VENDOR-DEFINED=(%04x) FIRST-CLUSTER=(%d) DATA-LENGTH=(%d)>", vade.GeneralSecondaryFlags, vade.VendorGuid, vade.VendorDefined, vade.FirstCluster, vade.DataLength)
}

func (ExfatVendorAllocationDirectoryEntry) TypeName() string {
	return "VendorAllocation"
}

func parseDirectoryEntry(entryType EntryType, directoryEntryData []byte) (parsed DirectoryEntry, err error) {
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

	depk := DirectoryEntryParserKey{
		typeCode:   entryType.TypeCode(),
		isCritical: entryType.IsCritical(),
		isPrimary:  entryType.IsPrimary(),
	}

	structType, found := directoryEntryParsers[depk]
	if found == false {
		log.Panicf("no struct-type recorded for entry-type: %s", depk)
	}

	s := reflect.New(structType)
	x := s.Interface()

	err = restruct.Unpack(directoryEntryData, defaultEncoding, x)
	log.PanicIf(err)

	return x.(DirectoryEntry), nil
}

// packDirectoryEntry encodes an entry struct to its on-disk form.
func packDirectoryEntry(de DirectoryEntry) (raw []byte, err error) {
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

	raw, err = restruct.Pack(defaultEncoding, de)
	log.PanicIf(err)

	if len(raw) != directoryEntryBytesCount {
		log.Panicf("directory-entry [%s] packed to (%d) bytes", de.TypeName(), len(raw))
	}

	return raw, nil
}
