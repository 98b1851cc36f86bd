// optdump decodes an encoded generator-options body and prints it as
// YAML, either as a raw presence view or resolved against the
// documented defaults.
package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/lmittmann/tint"
	"gopkg.in/yaml.v3"

	"github.com/rawbytedev/genopts"
)

type CLI struct {
	Input   string `arg:"" help:"Path to the encoded options body, or - for stdin"`
	Hex     bool   `help:"Treat INPUT as a hex string instead of a path" short:"x"`
	Scope   string `help:"Attachment scope of the blob" enum:"file,message,field" default:"field" short:"s"`
	Resolve bool   `help:"Print effective values with documented defaults applied" short:"r"`
	Verbose bool   `help:"Enable debug logging" short:"v"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("optdump"),
		kong.Description("Inspect encoded generator options blobs."))

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: level}))

	ctx.FatalIfErrorf(cli.Run(logger))
}

func (c *CLI) Run(logger *slog.Logger) error {
	buf, err := c.readInput()
	if err != nil {
		return err
	}
	scope, err := genopts.ParseScope(c.Scope)
	if err != nil {
		return err
	}

	opts, err := genopts.Decode(buf)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	logger.Debug("decoded options body",
		"bytes", len(buf),
		"scope", scope,
		"include", len(opts.Include),
		"exclude", len(opts.Exclude),
		"unknown", len(opts.Unknown))

	var view any
	if c.Resolve {
		view = resolvedView(scope, opts.Resolve())
	} else {
		view = rawView(scope, opts)
	}
	out, err := yaml.Marshal(view)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(out)
	return err
}

func (c *CLI) readInput() ([]byte, error) {
	if c.Hex {
		s := strings.Map(func(r rune) rune {
			if r == ' ' || r == '\n' || r == '\t' {
				return -1
			}
			return r
		}, c.Input)
		return hex.DecodeString(s)
	}
	if c.Input == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(c.Input)
}

// raw holds the presence view: absent fields are omitted entirely so
// the output mirrors what was actually on the wire.
type raw struct {
	Scope string `yaml:"scope"`

	MaxSize   *int32 `yaml:"max_size,omitempty"`
	MaxLength *int32 `yaml:"max_length,omitempty"`
	MaxCount  *int32 `yaml:"max_count,omitempty"`

	IntSize *string `yaml:"int_size,omitempty"`
	Type    *string `yaml:"type,omitempty"`

	LongNames          *bool   `yaml:"long_names,omitempty"`
	PackedStruct       *bool   `yaml:"packed_struct,omitempty"`
	PackedEnum         *bool   `yaml:"packed_enum,omitempty"`
	SkipMessage        *bool   `yaml:"skip_message,omitempty"`
	NoUnions           *bool   `yaml:"no_unions,omitempty"`
	MsgID              *uint32 `yaml:"msgid,omitempty"`
	AnonymousOneof     *bool   `yaml:"anonymous_oneof,omitempty"`
	Proto3             *bool   `yaml:"proto3,omitempty"`
	Proto3SingularMsgs *bool   `yaml:"proto3_singular_msgs,omitempty"`
	EnumToString       *bool   `yaml:"enum_to_string,omitempty"`
	FixedLength        *bool   `yaml:"fixed_length,omitempty"`
	FixedCount         *bool   `yaml:"fixed_count,omitempty"`
	SubmsgCallback     *bool   `yaml:"submsg_callback,omitempty"`

	MangleNames      *string `yaml:"mangle_names,omitempty"`
	CallbackDatatype *string `yaml:"callback_datatype,omitempty"`
	CallbackFunction *string `yaml:"callback_function,omitempty"`
	DescriptorSize   *string `yaml:"descriptorsize,omitempty"`
	DefaultHas       *bool   `yaml:"default_has,omitempty"`
	Package          *string `yaml:"package,omitempty"`
	TypeOverride     *string `yaml:"type_override,omitempty"`
	SortByTag        *bool   `yaml:"sort_by_tag,omitempty"`
	FallbackType     *string `yaml:"fallback_type,omitempty"`

	Include []string     `yaml:"include,omitempty"`
	Exclude []string     `yaml:"exclude,omitempty"`
	Unknown []unknownRec `yaml:"unknown_fields,omitempty"`
}

type unknownRec struct {
	Tag     uint32 `yaml:"tag"`
	Wire    string `yaml:"wire"`
	Payload string `yaml:"payload"` // hex
}

func rawView(scope genopts.Scope, o *genopts.Options) raw {
	v := raw{
		Scope:              scope.String(),
		MaxSize:            ptr(o.MaxSize),
		MaxLength:          ptr(o.MaxLength),
		MaxCount:           ptr(o.MaxCount),
		IntSize:            str(o.IntSize),
		Type:               str(o.Type),
		LongNames:          ptr(o.LongNames),
		PackedStruct:       ptr(o.PackedStruct),
		PackedEnum:         ptr(o.PackedEnum),
		SkipMessage:        ptr(o.SkipMessage),
		NoUnions:           ptr(o.NoUnions),
		MsgID:              ptr(o.MsgID),
		AnonymousOneof:     ptr(o.AnonymousOneof),
		Proto3:             ptr(o.Proto3),
		Proto3SingularMsgs: ptr(o.Proto3SingularMsgs),
		EnumToString:       ptr(o.EnumToString),
		FixedLength:        ptr(o.FixedLength),
		FixedCount:         ptr(o.FixedCount),
		SubmsgCallback:     ptr(o.SubmsgCallback),
		MangleNames:        str(o.MangleNames),
		CallbackDatatype:   ptr(o.CallbackDatatype),
		CallbackFunction:   ptr(o.CallbackFunction),
		DescriptorSize:     str(o.DescriptorSize),
		DefaultHas:         ptr(o.DefaultHas),
		Package:            ptr(o.Package),
		TypeOverride:       str(o.TypeOverride),
		SortByTag:          ptr(o.SortByTag),
		FallbackType:       str(o.FallbackType),
		Include:            o.Include,
		Exclude:            o.Exclude,
	}
	for _, u := range o.Unknown {
		v.Unknown = append(v.Unknown, unknownRec{
			Tag:     u.Tag,
			Wire:    u.Wire.String(),
			Payload: hex.EncodeToString(u.Raw),
		})
	}
	return v
}

func ptr[T any](o genopts.Opt[T]) *T {
	if v, ok := o.Get(); ok {
		return &v
	}
	return nil
}

func str[T fmt.Stringer](o genopts.Opt[T]) *string {
	if v, ok := o.Get(); ok {
		s := v.String()
		return &s
	}
	return nil
}

// resolved is the effective view; every field prints.
type resolved struct {
	Scope string `yaml:"scope"`

	MaxSize   int32 `yaml:"max_size"`
	MaxLength int32 `yaml:"max_length"`
	MaxCount  int32 `yaml:"max_count"`

	IntSize string `yaml:"int_size"`
	Type    string `yaml:"type"`

	LongNames          bool   `yaml:"long_names"`
	PackedStruct       bool   `yaml:"packed_struct"`
	PackedEnum         bool   `yaml:"packed_enum"`
	SkipMessage        bool   `yaml:"skip_message"`
	NoUnions           bool   `yaml:"no_unions"`
	MsgID              uint32 `yaml:"msgid"`
	AnonymousOneof     bool   `yaml:"anonymous_oneof"`
	Proto3             bool   `yaml:"proto3"`
	Proto3SingularMsgs bool   `yaml:"proto3_singular_msgs"`
	EnumToString       bool   `yaml:"enum_to_string"`
	FixedLength        bool   `yaml:"fixed_length"`
	FixedCount         bool   `yaml:"fixed_count"`
	SubmsgCallback     bool   `yaml:"submsg_callback"`

	MangleNames      string `yaml:"mangle_names"`
	CallbackDatatype string `yaml:"callback_datatype"`
	CallbackFunction string `yaml:"callback_function"`
	DescriptorSize   string `yaml:"descriptorsize"`
	DefaultHas       bool   `yaml:"default_has"`
	Package          string `yaml:"package"`
	TypeOverride     string `yaml:"type_override"`
	SortByTag        bool   `yaml:"sort_by_tag"`
	FallbackType     string `yaml:"fallback_type"`

	Include []string `yaml:"include,omitempty"`
	Exclude []string `yaml:"exclude,omitempty"`
}

func resolvedView(scope genopts.Scope, r genopts.Resolved) resolved {
	override := ""
	if r.TypeOverride != 0 {
		override = r.TypeOverride.String()
	}
	return resolved{
		Scope:              scope.String(),
		MaxSize:            r.MaxSize,
		MaxLength:          r.MaxLength,
		MaxCount:           r.MaxCount,
		IntSize:            r.IntSize.String(),
		Type:               r.Type.String(),
		LongNames:          r.LongNames,
		PackedStruct:       r.PackedStruct,
		PackedEnum:         r.PackedEnum,
		SkipMessage:        r.SkipMessage,
		NoUnions:           r.NoUnions,
		MsgID:              r.MsgID,
		AnonymousOneof:     r.AnonymousOneof,
		Proto3:             r.Proto3,
		Proto3SingularMsgs: r.Proto3SingularMsgs,
		EnumToString:       r.EnumToString,
		FixedLength:        r.FixedLength,
		FixedCount:         r.FixedCount,
		SubmsgCallback:     r.SubmsgCallback,
		MangleNames:        r.MangleNames.String(),
		CallbackDatatype:   r.CallbackDatatype,
		CallbackFunction:   r.CallbackFunction,
		DescriptorSize:     r.DescriptorSize.String(),
		DefaultHas:         r.DefaultHas,
		Package:            r.Package,
		TypeOverride:       override,
		SortByTag:          r.SortByTag,
		FallbackType:       r.FallbackType.String(),
		Include:            r.Include,
		Exclude:            r.Exclude,
	}
}
