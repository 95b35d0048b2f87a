package messages

// System messages for downloads, probing and process elevation.
const (
	DownloadCreateDirFmt         = "create download dir: %w"
	DownloadCreateTempFileFmt    = "create temp file: %w"
	DownloadSyncTempFileFmt      = "sync temp file: %w"
	DownloadCloseTempFileFmt     = "close temp file: %w"
	DownloadTruncateTempFileFmt  = "truncate temp file: %w"
	DownloadResetTempFileFmt     = "reset temp file offset: %w"
	DownloadMoveIntoPlaceFmt     = "move download into place: %w"
	DownloadCreateRequestFmt     = "create request for %s: %w"
	DownloadFailedFmt            = "download %s: %w"
	DownloadUnexpectedStatusFmt  = "download %s: unexpected status %s"
	DownloadTooLargeFmt          = "download %s: response too large (%d bytes > limit %d bytes)"
	DownloadRetryBudgetExhausted = "retry budget exhausted"
	DownloadNetworkDisabledFmt   = "download %s: network access disabled via %s"
	DownloadTimeoutFmt           = "download %s: request timed out\n\nRemediation:\n  - Check your internet connection\n  - If behind a proxy, ensure HTTPS_PROXY is set\n  - Retry the launcher"
	DownloadUserAgentFmt         = "%s %s (+%s)"
	DownloadedFmt                = "Downloaded %s (%d bytes)\n"

	ProbeUnsupportedHostFmt = "version lookup unsupported on %s"
	ProbeOpenKeyFmt         = "open registry key %s: %w"
	ProbeReadValueFmt       = "read registry value %s\\%s: %w"
	ProbeEmptyValueFmt      = "registry value %s\\%s is empty"
	ProbeCloseKeyFmt        = "close registry key %s: %w"

	ElevateArtifactMissingFmt = "installer %s: %w"
	ElevateStartFailedFmt     = "start %s elevated: %w"
	ElevateResolvePathFmt     = "resolve %s: %w"

	HostDetectWow64FailedFmt = "detect WOW64: %w"

	EndpointsUnknownCategoryFmt = "endpoints: unknown category %q"
)
