// Package util provides small helpers shared by gwkit packages: pointer
// plumbing for optional values and hex octet text conversion.
package util
