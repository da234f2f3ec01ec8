package main

import (
	smppcoding "github.com/M2MGateway/go-smpp/coding"
)

// GetSMSEncoding names the SMPP data coding an SMSC would pick for message.
// Returns "gsm7", "ucs2", "ascii" or "latin1".
func GetSMSEncoding(message string) string {
	bestCoding := smppcoding.BestSafeCoding(message)
	switch bestCoding {
	case smppcoding.GSM7BitCoding:
		return "gsm7"
	case smppcoding.UCS2Coding:
		return "ucs2"
	case smppcoding.ASCIICoding:
		return "ascii"
	case smppcoding.Latin1Coding:
		return "latin1"
	default:
		return "gsm7"
	}
}
