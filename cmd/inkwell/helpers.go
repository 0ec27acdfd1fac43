package main

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// runDurationPrecision keeps history durations readable.
const runDurationPrecision = time.Second

// numberPrinter renders word counts with thousands separators.
var numberPrinter = message.NewPrinter(language.English)

func formatWords(n int) string {
	return numberPrinter.Sprintf("%d", n)
}

func formatPercent(fraction float64) string {
	return numberPrinter.Sprintf("%.0f%%", fraction*100)
}
