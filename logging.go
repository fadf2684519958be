package exfat

import (
	"github.com/dsoprea/go-logging"
)

// ConfigureLogging sends log output to the console. Only warnings and errors
// are shown unless `debug` is true.
func ConfigureLogging(debug bool) {
	log.AddAdapter("console", log.NewConsoleLogAdapter())

	scp := log.NewStaticConfigurationProvider()
	scp.SetDefaultAdapterName("console")

	if debug == true {
		scp.SetLevelName(log.LevelNameDebug)
	} else {
		scp.SetLevelName(log.LevelNameWarning)
	}

	log.LoadConfiguration(scp)
}
