// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gompm/mpm"
	"github.com/cpmech/gompm/out"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			for i := 8; i > 3; i-- {
				chk.CallerInfo(i)
			}
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".yaml", true)
	verbose := io.ArgToBool(1, true)
	erasePrev := io.ArgToBool(2, true)
	alias := io.ArgToString(3, "")

	// message
	if verbose {
		io.PfWhite("\nGompm -- Go Material Point Method\n\n")
		io.Pf("Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n\n")

		io.Pf("\n%v\n", io.ArgsTable(
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"erase previous results", "erasePrev", erasePrev,
			"word to add to results", "alias", alias,
		))
	}

	// analysis data
	analysis, err := mpm.NewMPM(fnamepath, alias, erasePrev, verbose)
	if err != nil {
		chk.Panic("NewMPM failed:\n%v", err)
	}

	// run simulation
	err = analysis.Run()
	if err != nil {
		chk.Panic("Run failed:\n%v", err)
	}

	// save results
	dir, key := analysis.Sim.DirOut, analysis.Sim.Key
	if err = out.WriteSnapshots(dir, key, analysis.Snapshots); err != nil {
		chk.Panic("%v", err)
	}
	if err = out.WriteSummary(dir, key, analysis.Summary); err != nil {
		chk.Panic("%v", err)
	}
	if verbose {
		io.Pfgreen("results written to %s/%s_*.csv\n", dir, key)
	}
}
