//go:build skyscraperdebug

package skyscraper

const debugChecks = true
