package main

import (
	"fmt"
	"os"

	"path/filepath"

	"github.com/dsoprea/go-logging"
	"github.com/dustin/go-humanize"
	"github.com/jessevdk/go-flags"
	"github.com/spf13/afero"

	"github.com/dsoprea/go-exfat-utils"
)

type rootParameters struct {
	List           bool   `short:"l" long:"list" description:"List files after checking"`
	FilenameFilter string `short:"p" long:"pattern" description:"Filename filter for the listing"`
	Version        bool   `short:"V" long:"version" description:"Print version"`
	Debug          bool   `long:"debug" description:"Print debug logging"`

	Positional struct {
		Device string `positional-arg-name:"device"`
	} `positional-args:"yes"`
}

var (
	rootArguments = new(rootParameters)
)

func listFiles(er *exfat.ExfatReader) {
	tree := exfat.NewTree(er)

	err := tree.Load()
	log.PanicIf(err)

	files, nodes, err := tree.List()
	log.PanicIf(err)

	for _, currentFilepath := range files {
		node := nodes[currentFilepath]

		if rootArguments.FilenameFilter != "" {
			// Paths are separated with backslashes, so match on the name only.
			isMatched, err := filepath.Match(rootArguments.FilenameFilter, node.Name())
			log.PanicIf(err)

			if isMatched != true {
				continue
			}
		}

		if node.IsDirectory() == true {
			fmt.Printf("%15s %s\n", "<DIR>", currentFilepath)
		} else {
			fmt.Printf("%15s %s\n", humanize.Comma(int64(node.Size())), currentFilepath)
		}
	}
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
	p.Usage = "[-l] [-p pattern] [-V] <device>"

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

	fmt.Printf("Checking file system on %s.\n", rootArguments.Positional.Device)

	d, err := exfat.OpenDevice(afero.NewOsFs(), rootArguments.Positional.Device, false)
	log.PanicIf(err)

	defer d.Close()

	er := exfat.NewExfatReader(d)

	err = er.Parse()
	log.PanicIf(err)

	bsh := er.ActiveBootRegion()

	fmt.Printf("File system version           %d.%d\n", bsh.FileSystemRevision[1], bsh.FileSystemRevision[0])
	fmt.Printf("Sector size          %10s\n", humanize.IBytes(uint64(bsh.SectorSize())))
	fmt.Printf("Cluster size         %10s\n", humanize.IBytes(uint64(bsh.ClusterSize())))
	fmt.Printf("Volume size          %10s\n", humanize.IBytes(bsh.VolumeLength*uint64(bsh.SectorSize())))

	report, err := exfat.NewChecker(er).Check()
	log.PanicIf(err)

	fmt.Printf("Used space           %10s\n", humanize.IBytes(uint64(report.AllocatedClusters)*uint64(bsh.ClusterSize())))
	fmt.Printf("Available space      %10s\n", humanize.IBytes(uint64(report.ClusterCount-report.AllocatedClusters)*uint64(bsh.ClusterSize())))
	fmt.Printf("Totally %d directories and %d files.\n", report.Directories, report.Files)

	if rootArguments.List == true {
		listFiles(er)
	}

	if report.IsClean() == true {
		fmt.Printf("File system checking finished. No errors found.\n")
		return
	}

	for _, problem := range report.Problems {
		fmt.Printf("ERROR: %s\n", problem)
	}

	fmt.Printf("File system checking finished. ERRORS FOUND: %d.\n", len(report.Problems))

	d.Close()
	os.Exit(1)
}
