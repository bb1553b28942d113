//go:build !seqdebug

package search

const debugChecks = false
