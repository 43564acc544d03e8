package env

import (
	"fmt"
	"os"
	"strconv"
)

func TrySetFromEnv(envName string, val *string) {
	if envVal, found := os.LookupEnv(envName); found {
		*val = envVal
	}
}

func TrySetIntFromEnv(envName string, val *int) error {
	envVal, found := os.LookupEnv(envName)
	if !found {
		return nil
	}

	parsed, err := strconv.Atoi(envVal)
	if err != nil {
		return fmt.Errorf("invalid %s value %q: %w", envName, envVal, err)
	}

	*val = parsed
	return nil
}

func TrySetBoolFromEnv(envName string, val *bool) error {
	envVal, found := os.LookupEnv(envName)
	if !found {
		return nil
	}

	parsed, err := strconv.ParseBool(envVal)
	if err != nil {
		return fmt.Errorf("invalid %s value %q: %w", envName, envVal, err)
	}

	*val = parsed
	return nil
}
