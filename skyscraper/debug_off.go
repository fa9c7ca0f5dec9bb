//go:build !skyscraperdebug

package skyscraper

const debugChecks = false
