package main

import (
	"fmt"
	"os"

	"path/filepath"

	"github.com/dsoprea/go-logging"
	"github.com/jessevdk/go-flags"
	"github.com/spf13/afero"

	"github.com/dsoprea/go-exfat-utils"
)

type rootParameters struct {
	SuperBlockOnly bool `short:"s" description:"Dump only info from the super-block. May be useful for heavily corrupted file systems."`
	UsedClusters   bool `short:"u" description:"Dump ranges of used clusters."`
	Detail         bool `short:"d" long:"detail" description:"Print every field of the boot-sector header and every root-directory entry."`
	Version        bool `short:"V" long:"version" description:"Print version"`
	Debug          bool `long:"debug" description:"Print debug logging"`

	Positional struct {
		Device string `positional-arg-name:"device"`
	} `positional-args:"yes"`
}

var (
	rootArguments = new(rootParameters)
)

func printGenericInfo(bsh exfat.BootSectorHeader) {
	fmt.Printf("Volume serial number      0x%08x\n", bsh.VolumeSerialNumber)
	fmt.Printf("FS version                       %d.%d\n", bsh.FileSystemRevision[1], bsh.FileSystemRevision[0])
	fmt.Printf("Sector size               %10d\n", bsh.SectorSize())
	fmt.Printf("Cluster size              %10d\n", bsh.ClusterSize())
}

func printOtherInfo(bsh exfat.BootSectorHeader) {
	fmt.Printf("First sector              %10d\n", bsh.PartitionOffset)
	fmt.Printf("FAT first sector          %10d\n", bsh.FatOffset)
	fmt.Printf("FAT sectors count         %10d\n", bsh.FatLength)
	fmt.Printf("First cluster sector      %10d\n", bsh.ClusterHeapOffset)
	fmt.Printf("Root directory cluster    %10d\n", bsh.FirstClusterOfRootDirectory)
	fmt.Printf("Volume state                  0x%04x\n", uint16(bsh.VolumeFlags))
	fmt.Printf("FATs count                %10d\n", bsh.NumberOfFats)
	fmt.Printf("Drive number                    0x%02x\n", bsh.DriveSelect)
	fmt.Printf("Allocated space           %9d%%\n", bsh.PercentInUse)
}

func main() {
	defer func() {
		if state := recover(); state != nil {
			err := log.Wrap(state.(error))
			log.PrintError(err)
			os.Exit(1)
		}
	}()

	p := flags.NewParser(rootArguments, flags.Default)
	p.Usage = "[-s] [-u] [-V] <device>"

	_, err := p.Parse()
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok == true && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}

		os.Exit(1)
	}

	if rootArguments.Version == true {
		fmt.Printf("%s %s\n", filepath.Base(os.Args[0]), exfat.Version)
		os.Exit(0)
	}

	if rootArguments.Positional.Device == "" {
		p.WriteHelp(os.Stderr)
		os.Exit(1)
	}

	exfat.ConfigureLogging(rootArguments.Debug)

	d, err := exfat.OpenDevice(afero.NewOsFs(), rootArguments.Positional.Device, false)
	log.PanicIf(err)

	defer d.Close()

	er := exfat.NewExfatReader(d)

	err = er.Parse()
	log.PanicIf(err)

	bsh := er.ActiveBootRegion()

	if rootArguments.Detail == true {
		bsh.Dump()
	}

	if rootArguments.SuperBlockOnly == true {
		printGenericInfo(bsh)
		fmt.Printf("Sectors count             %10d\n", bsh.VolumeLength)
		fmt.Printf("Clusters count            %10d\n", bsh.ClusterCount)
		printOtherInfo(bsh)

		return
	}

	label, err := exfat.ReadVolumeLabel(er)
	log.PanicIf(err)

	ab, err := exfat.LoadAllocationBitmap(er)
	log.PanicIf(err)

	freeClusters := ab.ClusterCount() - ab.CountAllocated()
	freeSectors := uint64(freeClusters) << bsh.SectorsPerClusterShift

	fmt.Printf("Volume label         %15s\n", label)
	printGenericInfo(bsh)
	fmt.Printf("Sectors count             %10d\n", bsh.VolumeLength)
	fmt.Printf("Free sectors              %10d\n", freeSectors)
	fmt.Printf("Clusters count            %10d\n", bsh.ClusterCount)
	fmt.Printf("Free clusters             %10d\n", freeClusters)
	printOtherInfo(bsh)

	if rootArguments.UsedClusters == true {
		fmt.Printf("Used clusters ")

		for _, cr := range ab.UsedRanges() {
			fmt.Printf(" %d-%d", cr.First, cr.First+cr.Count-1)
		}

		fmt.Printf("\n")
	}

	if rootArguments.Detail == true {
		fmt.Printf("\n")

		root, err := exfat.ReadRootDirectory(er)
		log.PanicIf(err)

		root.Dump()
	}
}
