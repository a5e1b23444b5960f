// Package storage declares persistence interfaces for web-owned session and cache data.
package storage
