// Package zghashtest contains a compliance suite
// for implementations of [zghash.Impl].
package zghashtest
