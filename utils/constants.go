// File: utils/constants.go
package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for authorization cache entries.
const AuthCacheTTL = 10 * time.Minute

// CartCachePrefix is the prefix used for Redis shopping-cart keys.
const CartCachePrefix = "cart:"

// CartTTL is how long an untouched cart survives before Redis drops it.
const CartTTL = 7 * 24 * time.Hour
