package cli

// Options is the root of the command line. Struct tags are interpreted by
// github.com/jessevdk/go-flags.
type Options struct {
	Config        string `short:"f" long:"config" description:"configuration YAML path"`
	Verbosity     *int   `short:"v" long:"verbosity" description:"console log level, 0 (debug) to 4 (panic)"`
	LogFile       string `short:"F" long:"logfile" description:"also write logs to this file"`
	FileVerbosity *int   `short:"V" long:"fileverbosity" description:"log file level, 0 (debug) to 4 (panic)"`
	Debug         string `short:"D" long:"debug" description:"debug places, e.g. \"acl.* dialprefix\" or \"-acl.http\""`
	Format        string `short:"o" long:"format" choice:"text" choice:"json" choice:"yaml" default:"text" description:"output format"`

	Varint    *VarintCmd    `command:"varint" description:"Encode or decode variable-length integers"`
	NetLong   *NetLongCmd   `command:"netlong" description:"Encode or decode 32-bit big-endian integers"`
	CheckIP   *CheckIPCmd   `command:"check-ip" description:"Check an address against allow and deny lists"`
	Normalize *NormalizeCmd `command:"normalize" description:"Rewrite numbers to their canonical dial prefix"`
	Version   *VersionCmd   `command:"version" description:"Print version information"`
}

// newOptions instantiates every command so go-flags can populate them and
// wires them to the shared app.
func newOptions(a *app) *Options {
	return &Options{
		Varint: &VarintCmd{
			Encode: &VarintEncodeCmd{app: a},
			Decode: &VarintDecodeCmd{app: a},
		},
		NetLong: &NetLongCmd{
			Encode: &NetLongEncodeCmd{app: a},
			Decode: &NetLongDecodeCmd{app: a},
		},
		CheckIP:   &CheckIPCmd{app: a},
		Normalize: &NormalizeCmd{app: a},
		Version:   &VersionCmd{app: a},
	}
}
