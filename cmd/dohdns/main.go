package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	dohdns "github.com/folbricht/dohdns"
	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type options struct {
	configFile string
	transport  string
	timeout    time.Duration
	sortMX     bool
	debug      bool
	syslogAddr string
}

func main() {
	var opt options
	cmd := &cobra.Command{
		Use:   "dohdns [flags] <rtype> <name>",
		Short: "DNS-over-HTTPS lookup tool",
		Long: `DNS-over-HTTPS lookup tool.

Resolves a name to typed DNS records using the JSON API
of public DoH servers. By default Google's server is
queried first with Cloudflare as fallback; a custom
endpoint list can be provided in a config file.
`,
		Example: `  dohdns mx gmail.com
  dohdns -c endpoints.toml a example.com`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opt, args)
		},
		SilenceUsage: true,
	}
	cmd.Flags().StringVarP(&opt.configFile, "config", "c", "", "endpoint config file in TOML format")
	cmd.Flags().StringVar(&opt.transport, "transport", "tcp", "transport protocol to run HTTPS over, \"tcp\" or \"quic\"")
	cmd.Flags().DurationVar(&opt.timeout, "timeout", 0, "override the per-endpoint query timeout")
	cmd.Flags().BoolVar(&opt.sortMX, "sort", false, "sort MX records by priority and strip it from the data")
	cmd.Flags().BoolVar(&opt.debug, "debug", false, "enable debug logging")
	cmd.Flags().StringVar(&opt.syslogAddr, "syslog", "", "forward logs to the syslog server at this address")
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(opt options, args []string) error {
	rtype, name := args[0], args[1]

	if opt.debug {
		dohdns.Log.SetLevel(logrus.DebugLevel)
	}
	if opt.syslogAddr != "" {
		hook, err := newSyslogHook("udp", opt.syslogAddr, "dohdns")
		if err != nil {
			return err
		}
		dohdns.Log.AddHook(hook)
	}

	endpoints := dohdns.DefaultEndpoints()
	if opt.configFile != "" {
		config, err := loadConfig(opt.configFile)
		if err != nil {
			return err
		}
		endpoints, err = config.endpoints()
		if err != nil {
			return err
		}
	}
	if opt.timeout > 0 {
		for i := range endpoints {
			endpoints[i].Timeout = opt.timeout
		}
	}

	client, err := dohdns.NewClient(dohdns.ClientOptions{Transport: opt.transport}, endpoints...)
	if err != nil {
		return err
	}

	var answers []dohdns.Answer
	if opt.sortMX && strings.EqualFold(rtype, "mx") {
		answers, err = client.ResolveMXSorted(name)
	} else {
		answers, err = client.ResolveStringType(name, rtype)
	}
	if err != nil {
		return err
	}
	if len(answers) == 0 {
		fmt.Println("No entries found.")
		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Name", "Type", "TTL", "Data"})
	for _, a := range answers {
		table.Append([]string{
			a.Name,
			dohdns.TypeName(a.Type),
			strconv.FormatUint(uint64(a.TTL), 10),
			a.Data,
		})
	}
	table.Render()
	return nil
}
