// Command tglstem stems Tagalog words and text.
//
//	tglstem stem nagsulat binasa
//	tglstem candidates pinakamahusay't
//	echo "Iba't-iba ang bulaklak" | tglstem text --format json
//	tglstem accuracy --corpus examples.csv --out_dir results/
//	tglstem dictgen --input wordlist.txt --output data/words.txt
//
// Every flag can also be set in a config file (--config) or through a
// TGLSTEM_ environment variable, e.g. TGLSTEM_MAX_CANDIDATES=512.
package main

import (
	"os"

	"github.com/golang/glog"
)

func main() {
	defer glog.Flush()
	if err := newRootCmd().Execute(); err != nil {
		glog.Errorf("tglstem: %v", err)
		glog.Flush()
		os.Exit(1)
	}
}
