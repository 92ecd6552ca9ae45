package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/hijri"
	"github.com/dmitrymomot/hijri/pkg/julian"
)

type options struct {
	locale     string
	adjustment int
	profile    string
	layout     string
	preset     string
	jdn        int
	months     bool
	json       bool
}

var errConflictingFlags = errors.New("conflicting flags")

func newRootCommand(out io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "hijri [date]",
		Short: "Convert a Gregorian date to the Hijri calendar",
		Long: "Convert a Gregorian date (RFC 3339 or YYYY-MM-DD, default now) to the Hijri " +
			"calendar with the Kuwaiti algorithm and print it in the requested locale.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetOut(out)
			return opts.run(cmd, args)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.locale, "locale", "l", "en", "output locale, e.g. en, ar, ar-SA, fr")
	f.IntVarP(&opts.adjustment, "adjustment", "a", hijri.DefaultAdjustment, "day offset applied before conversion (0 with --jdn unless set)")
	f.StringVar(&opts.profile, "profile", "", `named offset from "name=offset,..." in HIJRI_PROFILES`)
	f.StringVar(&opts.layout, "layout", "", "Go reference layout, e.g. \"Monday 2 January 2006\"")
	f.StringVarP(&opts.preset, "preset", "p", string(hijri.PresetFullDateTime), "layout preset: L, LL, LLL, LLLL, LT, LTS")
	f.IntVar(&opts.jdn, "jdn", 0, "convert a Julian Day Number instead of a date")
	f.BoolVar(&opts.months, "months", false, "list the month names of the locale")
	f.BoolVar(&opts.json, "json", false, "print the date as JSON")

	cmd.MarkFlagsMutuallyExclusive("layout", "preset")
	cmd.MarkFlagsMutuallyExclusive("adjustment", "profile")

	return cmd
}

func (o *options) run(cmd *cobra.Command, args []string) error {
	if err := hijri.ValidateLocale(o.locale); err != nil {
		return err
	}

	if o.months {
		for i, name := range hijri.MonthNames(o.locale) {
			fmt.Fprintf(cmd.OutOrStdout(), "%2d  %s\n", i+1, name)
		}
		return nil
	}

	conv, err := o.converter(cmd)
	if err != nil {
		return err
	}
	defer conv.Close()

	t, err := o.instant(cmd, args)
	if err != nil {
		return err
	}

	d := conv.Convert(t, o.locale)

	if o.json {
		data, err := d.MarshalJSON()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	s := ""
	if cmd.Flags().Changed("layout") {
		s = d.Format(o.layout)
	} else if s, err = d.FormatPreset(hijri.Preset(o.preset)); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), s)
	return nil
}

// converter builds the converter for the flags. A Julian Day Number names
// the exact day, so --jdn converts without an offset unless --adjustment
// or --profile asks for one.
func (o *options) converter(cmd *cobra.Command) (*hijri.Converter, error) {
	var profiles hijri.Profiles
	if raw := os.Getenv("HIJRI_PROFILES"); raw != "" {
		var err error
		if profiles, err = hijri.ParseProfiles(raw); err != nil {
			return nil, err
		}
	}

	adjustment := o.adjustment
	if cmd.Flags().Changed("jdn") && !cmd.Flags().Changed("adjustment") {
		adjustment = 0
	}

	conv := hijri.New(
		hijri.WithAdjustment(adjustment),
		hijri.WithLocale(o.locale),
		hijri.WithProfiles(profiles),
	)
	if o.profile != "" {
		if err := conv.UseProfile(o.profile); err != nil {
			_ = conv.Close()
			return nil, err
		}
	}
	return conv, nil
}

// instant resolves the positional date, --jdn or the current time.
func (o *options) instant(cmd *cobra.Command, args []string) (time.Time, error) {
	jdnSet := cmd.Flags().Changed("jdn")
	switch {
	case jdnSet && len(args) > 0:
		return time.Time{}, fmt.Errorf("%w: --jdn and a date argument", errConflictingFlags)
	case jdnSet:
		// Conversion reads years before 1 in historical numbering.
		y, m, d := julian.ToGregorian(o.jdn)
		if y <= 0 {
			y--
		}
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
	case len(args) == 0:
		return time.Now(), nil
	}

	s := strings.TrimSpace(args[0])
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(time.DateOnly, s, time.Local); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q: want RFC 3339 or YYYY-MM-DD", s)
}
