/*
 * LOLPARSE
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

/*
Package config holds process-wide settings for the lolparse CLI: a product
version string and a small string-keyed option map, read with typed
accessors the way the rest of this project's ecosystem does it.
*/
package config

import (
	"fmt"
	"strconv"

	"github.com/krotik/common/errorutil"
)

/*
ProductVersion is the current version of lolparse.
*/
const ProductVersion = "1.0.0"

/*
Known configuration options.
*/
const (
	OutputMode  = "OutputMode"  // "dump" or "pretty"
	LogLevel    = "LogLevel"    // "debug", "info" or "error"
	IndentWidth = "IndentWidth" // spaces per nesting level in -pretty output
)

/*
DefaultConfig is the default configuration.
*/
var DefaultConfig = map[string]interface{}{
	OutputMode:  "dump",
	LogLevel:    "info",
	IndentWidth: "4",
}

/*
Config is the actual configuration in effect.
*/
var Config map[string]interface{}

func init() {
	data := make(map[string]interface{})
	for k, v := range DefaultConfig {
		data[k] = v
	}
	Config = data
}

/*
Str reads a config value as a string.
*/
func Str(key string) string {
	return fmt.Sprint(Config[key])
}

/*
Int reads a config value as an int, panicking via errorutil on a malformed
value - configuration is trusted process state, not user input.
*/
func Int(key string) int {
	ret, err := strconv.ParseInt(fmt.Sprint(Config[key]), 10, 64)
	errorutil.AssertTrue(err == nil,
		fmt.Sprintf("could not parse config key %v: %v", key, err))
	return int(ret)
}
