package main

import (
	"go.temporal.io/sdk/client"
)

func temporalOptions() client.Options {
	return client.Options{HostPort: temporalAddress}
}
