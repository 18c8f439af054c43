package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/icomputational/hbase/pkg/bytesutil"
	"github.com/icomputational/hbase/pkg/logging"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Missing command.")
		printUsage()
		os.Exit(1)
	}

	escapeCmd := flag.NewFlagSet("escape", flag.ExitOnError)
	escapeHex := escapeCmd.String("hex", "", "Key bytes as hex digits.")
	escapeLevel := escapeCmd.Int("loglevel", 1, "Log level (0/1/2/3 => Debug/Info/Warn/Error).")

	unescapeCmd := flag.NewFlagSet("unescape", flag.ExitOnError)
	unescapeKey := unescapeCmd.String("key", "", "Key in escaped display form.")

	compareCmd := flag.NewFlagSet("compare", flag.ExitOnError)
	compareA := compareCmd.String("a", "", "Left key in escaped display form.")
	compareB := compareCmd.String("b", "", "Right key in escaped display form.")
	compareBytewise := compareCmd.Bool("bytewise", false, "Disable the wordwise comparison strategy.")

	splitCmd := flag.NewFlagSet("split", flag.ExitOnError)
	splitStart := splitCmd.String("start", "", "Range start key in escaped display form.")
	splitEnd := splitCmd.String("end", "", "Range end key in escaped display form.")
	splitNum := splitCmd.Int("num", 1, "Number of interior split points.")
	splitInclusive := splitCmd.Bool("inclusive", false, "Treat the end key as an inclusive bound.")
	splitLevel := splitCmd.Int("loglevel", 1, "Log level (0/1/2/3 => Debug/Info/Warn/Error).")

	switch os.Args[1] {
	case "escape":
		escapeCmd.Parse(os.Args[2:])
		execEscape(*escapeHex, *escapeLevel)
	case "unescape":
		unescapeCmd.Parse(os.Args[2:])
		execUnescape(*unescapeKey)
	case "compare":
		compareCmd.Parse(os.Args[2:])
		execCompare(*compareA, *compareB, *compareBytewise)
	case "split":
		splitCmd.Parse(os.Args[2:])
		execSplit(*splitStart, *splitEnd, *splitInclusive, *splitNum, *splitLevel)
	default:
		fmt.Printf("Unrecognized command \"%v\"\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("\nUsage:")
	fmt.Printf("\n\t%v <command> [arguments]\n", os.Args[0])
	fmt.Println("\nThe commands are:")
	fmt.Println("\n\tescape\t\trender hex key bytes in printable display form")
	fmt.Println("\tunescape\tdecode a display-form key back to hex bytes")
	fmt.Println("\tcompare\t\tcompare two display-form keys lexicographically")
	fmt.Println("\tsplit\t\tsplit a key range into evenly spaced boundaries")
	fmt.Println()
}

func execEscape(hexKey string, level int) {
	logger := logging.New(level)
	b, err := bytesutil.HexToBytes(hexKey)
	if err != nil {
		logger.Error("Parse hex key failed | hex=%v | err=[%v]", hexKey, err)
		os.Exit(1)
	}
	fmt.Println(bytesutil.ToStringBinary(b))
}

func execUnescape(key string) {
	b := bytesutil.ToBytesBinary(key)
	fmt.Println(bytesutil.BytesToHex(b, 0, len(b)))
}

func execCompare(a string, b string, bytewise bool) {
	cmp := bytesutil.NewComparer(!bytewise)
	result := cmp.Compare(bytesutil.ToBytesBinary(a), bytesutil.ToBytesBinary(b))
	switch {
	case result < 0:
		fmt.Println(-1)
	case result > 0:
		fmt.Println(1)
	default:
		fmt.Println(0)
	}
}

func execSplit(start string, end string, inclusive bool, num int, level int) {
	logger := logging.New(level)
	boundaries := bytesutil.SplitRange(bytesutil.ToBytesBinary(start),
		bytesutil.ToBytesBinary(end), inclusive, num)
	if boundaries == nil {
		logger.Error("Split infeasible | start=%v | end=%v | num=%v", start, end, num)
		os.Exit(1)
	}
	for _, b := range boundaries {
		fmt.Println(bytesutil.ToStringBinary(b))
	}
}
