// Package modules собирает долгоживущие компоненты приложения в errgroup.
package modules

import "plate_appraiser/pkg/contextx"

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals
