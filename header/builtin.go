package header

// RootID is the qualified identifier of the builtin hierarchy root.
const RootID = "header.CustomHeader"

// builtins lists the builtin types; parents always come before their subtypes.
var builtins = []struct {
	kind   Kind
	id     string
	parent Kind
	list   bool
}{
	{KindAccept, "Accept", KindCustom, true},
	{KindAcceptEncoding, "AcceptEncoding", KindCustom, true},
	{KindAcceptLanguage, "AcceptLanguage", KindCustom, true},
	{KindAltSvc, "AltSvc", KindCustom, true},
	{KindAllow, "Allow", KindCustom, true},
	{KindAuthorization, "Authorization", KindCustom, false},
	{KindProxyAuthorization, "ProxyAuthorization", KindAuthorization, false},
	{KindCacheControl, "CacheControl", KindCustom, true},
	{KindConnection, "Connection", KindCustom, true},
	{KindContentDisposition, "ContentDisposition", KindCustom, false},
	{KindContentEncoding, "ContentEncoding", KindCustom, true},
	{KindContentLanguage, "ContentLanguage", KindCustom, true},
	{KindContentLength, "ContentLength", KindCustom, false},
	{KindContentRange, "ContentRange", KindCustom, false},
	{KindContentSecurityPolicy, "ContentSecurityPolicy", KindCustom, false},
	{KindContentType, "ContentType", KindCustom, false},
	{KindCookie, "Cookie", KindCustom, false},
	{KindCrossOriginResourcePolicy, "CrossOriginResourcePolicy", KindCustom, false},
	{KindDate, "Date", KindCustom, false},
	{KindExpires, "Expires", KindDate, false},
	{KindIfModifiedSince, "IfModifiedSince", KindDate, false},
	{KindIfUnmodifiedSince, "IfUnmodifiedSince", KindDate, false},
	{KindLastModified, "LastModified", KindDate, false},
	{KindDigest, "Digest", KindCustom, true},
	{KindDnt, "Dnt", KindCustom, false},
	{KindEtag, "Etag", KindCustom, false},
	{KindForwarded, "Forwarded", KindCustom, true},
	{KindFrom, "From", KindCustom, false},
	{KindHost, "Host", KindCustom, false},
	{KindIfMatch, "IfMatch", KindCustom, true},
	{KindIfNoneMatch, "IfNoneMatch", KindIfMatch, true},
	{KindKeepAlive, "KeepAlive", KindCustom, true},
	{KindLink, "Link", KindCustom, true},
	{KindLocation, "Location", KindCustom, false},
	{KindReferer, "Referer", KindCustom, false},
	{KindReferrerPolicy, "ReferrerPolicy", KindCustom, true},
	{KindRetryAfter, "RetryAfter", KindCustom, false},
	{KindServer, "Server", KindCustom, false},
	{KindSetCookie, "SetCookie", KindCustom, false},
	{KindStrictTransportSecurity, "StrictTransportSecurity", KindCustom, false},
	{KindTransferEncoding, "TransferEncoding", KindCustom, true},
	{KindUpgrade, "Upgrade", KindCustom, true},
	{KindUpgradeInsecureRequests, "UpgradeInsecureRequests", KindCustom, false},
	{KindUserAgent, "UserAgent", KindCustom, false},
	{KindVary, "Vary", KindCustom, true},
	{KindWwwAuthenticate, "WwwAuthenticate", KindCustom, false},
	{KindProxyAuthenticate, "ProxyAuthenticate", KindWwwAuthenticate, false},
	{KindXContentTypeOptions, "XContentTypeOptions", KindCustom, false},
	{KindXDnsPrefetchControl, "XDnsPrefetchControl", KindCustom, false},
	{KindXFrameOptions, "XFrameOptions", KindCustom, false},
	{KindXXssProtection, "XXssProtection", KindCustom, false},
}

var builtinNames = func() map[Kind]string {
	m := make(map[Kind]string, len(builtins))
	for _, b := range builtins {
		m[b.kind] = b.id
	}
	return m
}()

// Root is the shared builtin hierarchy.
// Do not derive from it; use [NewBuiltinRoot] to get a hierarchy that can be extended.
var Root = NewBuiltinRoot()

// NewBuiltinRoot builds a fresh copy of the builtin hierarchy.
func NewBuiltinRoot() *Type {
	root := NewRoot(RootID)
	byKind := map[Kind]*Type{KindCustom: root}
	for _, b := range builtins {
		opts := []TypeOption{WithKind(b.kind)}
		if b.list {
			opts = append(opts, AsList())
		}
		byKind[b.kind] = byKind[b.parent].Derive("header."+b.id, opts...)
	}
	return root
}
