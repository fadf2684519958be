package main

import (
	"fmt"
	"os"
	"strconv"

	"math/bits"
	"path/filepath"

	"github.com/dsoprea/go-logging"
	"github.com/jessevdk/go-flags"
	"github.com/spf13/afero"

	"github.com/dsoprea/go-exfat-utils"
)

type rootParameters struct {
	VolumeId          string `short:"i" value-name:"volume-id" description:"A 32-bit hexadecimal number (no 0x prefix). By default a value based on the current time is used."`
	VolumeLabel       string `short:"n" value-name:"volume-name" description:"Volume name (label), up to 15 characters. By default no label is set."`
	FirstSector       uint64 `short:"p" value-name:"partition-first-sector" description:"First sector of the partition from the start of the whole disk. Recorded only." default:"0"`
	SectorsPerCluster int    `short:"s" value-name:"sectors-per-cluster" description:"Sectors per cluster; a power of two. Cluster size can not exceed 32M. Defaults to 4K under 256M, 32K under 32G, and 128K or more above."`
	Version           bool   `short:"V" long:"version" description:"Print version"`
	Debug             bool   `long:"debug" description:"Print debug logging"`

	Positional struct {
		Device string `positional-arg-name:"device"`
	} `positional-args:"yes"`
}

var (
	rootArguments = new(rootParameters)
)

func main() {
	defer func() {
		if state := recover(); state != nil {
			err := log.Wrap(state.(error))
			log.PrintError(err)
			os.Exit(1)
		}
	}()

	p := flags.NewParser(rootArguments, flags.Default)
	p.Usage = "[-i volume-id] [-n label] [-p partition-first-sector] [-s sectors-per-cluster] [-V] <device>"

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

	serial := uint32(0)
	if rootArguments.VolumeId != "" {
		value, err := strconv.ParseUint(rootArguments.VolumeId, 16, 32)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid volume-id: [%s]\n", rootArguments.VolumeId)
			os.Exit(1)
		}

		serial = uint32(value)
	}

	spcBits := exfat.AutomaticClusterBits
	if rootArguments.SectorsPerCluster != 0 {
		n := rootArguments.SectorsPerCluster
		if n < 0 || bits.OnesCount(uint(n)) != 1 {
			fmt.Fprintf(os.Stderr, "invalid option value: [%d]\n", n)
			os.Exit(1)
		}

		spcBits = bits.TrailingZeros(uint(n))
	}

	d, err := exfat.OpenDevice(afero.NewOsFs(), rootArguments.Positional.Device, true)
	log.PanicIf(err)

	defer d.Close()

	vp, err := exfat.NewVolumeParameters(exfat.DefaultSectorBits, spcBits, d.Size(), rootArguments.VolumeLabel, serial, rootArguments.FirstSector)
	log.PanicIf(err)

	f := exfat.NewFormatter(d, vp)
	f.SetProgressWriter(os.Stdout)

	err = f.Format()
	log.PanicIf(err)

	fmt.Printf("File system created successfully.\n")
}
