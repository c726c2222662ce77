package header

import "strconv"

// Kind is a discriminant of builtin header types.
type Kind uint16

const (
	// KindCustom is the kind of hierarchy roots and of headers no type matched.
	KindCustom Kind = iota
	// KindExtension is the kind of types derived without an explicit kind.
	KindExtension

	KindAccept
	KindAcceptEncoding
	KindAcceptLanguage
	KindAltSvc
	KindAllow
	KindAuthorization
	KindProxyAuthorization
	KindCacheControl
	KindConnection
	KindContentDisposition
	KindContentEncoding
	KindContentLanguage
	KindContentLength
	KindContentRange
	KindContentSecurityPolicy
	KindContentType
	KindCookie
	KindCrossOriginResourcePolicy
	KindDate
	KindExpires
	KindIfModifiedSince
	KindIfUnmodifiedSince
	KindLastModified
	KindDigest
	KindDnt
	KindEtag
	KindForwarded
	KindFrom
	KindHost
	KindIfMatch
	KindIfNoneMatch
	KindKeepAlive
	KindLink
	KindLocation
	KindReferer
	KindReferrerPolicy
	KindRetryAfter
	KindServer
	KindSetCookie
	KindStrictTransportSecurity
	KindTransferEncoding
	KindUpgrade
	KindUpgradeInsecureRequests
	KindUserAgent
	KindVary
	KindWwwAuthenticate
	KindProxyAuthenticate
	KindXContentTypeOptions
	KindXDnsPrefetchControl
	KindXFrameOptions
	KindXXssProtection
)

func (k Kind) String() string {
	switch k {
	case KindCustom:
		return "CustomHeader"
	case KindExtension:
		return "Extension"
	}
	if name, ok := builtinNames[k]; ok {
		return name
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}
