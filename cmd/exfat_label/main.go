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
	Version bool `short:"V" long:"version" description:"Print version"`
	Debug   bool `long:"debug" description:"Print debug logging"`

	Positional struct {
		Device string `positional-arg-name:"device"`
		Label  *string `positional-arg-name:"label"`
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
	p.Usage = "[-V] <device> [label]"

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

	isWrite := rootArguments.Positional.Label != nil

	d, err := exfat.OpenDevice(afero.NewOsFs(), rootArguments.Positional.Device, isWrite)
	log.PanicIf(err)

	defer d.Close()

	er := exfat.NewExfatReader(d)

	err = er.Parse()
	log.PanicIf(err)

	if isWrite == false {
		label, err := exfat.ReadVolumeLabel(er)
		log.PanicIf(err)

		fmt.Println(label)

		return
	}

	err = exfat.WriteVolumeLabel(er, d, *rootArguments.Positional.Label)
	log.PanicIf(err)

	err = d.Sync()
	log.PanicIf(err)
}
