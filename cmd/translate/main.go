package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"

	"github.com/manzanit0/googletoolkit/pkg/config"
	"github.com/manzanit0/googletoolkit/pkg/logger"
	"github.com/manzanit0/googletoolkit/pkg/translation"
)

func main() {
	target := flag.String("target", "", "language to translate to, e.g. zh")
	source := flag.String("source", "", "language to translate from, detected when empty")
	configFile := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	if err := run(*configFile, *target, *source, flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configFile, target, source string, texts []string) error {
	if target == "" || len(texts) == 0 {
		return fmt.Errorf("usage: translate -target <lang> text [text...]")
	}

	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger.InitCLISlog("translate", cfg.Debug)

	if err := cfg.ValidateTranslation(); err != nil {
		return err
	}

	ctx := context.Background()

	client, err := translation.NewGoogleClientFromCredentialsFile(ctx, cfg.GoogleCredentialsFile)
	if err != nil {
		return err
	}
	defer client.Close()

	var opts []translation.Option
	if source != "" {
		opts = append(opts, translation.WithSource(source))
	}

	res, err := client.Translate(ctx, texts, target, opts...)
	if err != nil {
		return fmt.Errorf("translate: %w", err)
	}

	fmt.Println(NewTranslationTable(res.Translations()))
	return nil
}

func NewTranslationTable(translations []translation.Translation) string {
	b := bytes.NewBuffer([]byte{})
	table := tablewriter.NewWriter(b)
	table.SetHeader([]string{"Text", "Translation", "Detected"})

	for _, t := range translations {
		table.Append([]string{t.Input, t.TranslatedText, t.DetectedSource})
	}

	table.SetAutoFormatHeaders(false)
	table.Render()

	return b.String()
}
