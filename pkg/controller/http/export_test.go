package http

// VerifySlackSignature exposes signature verification to the tests
var VerifySlackSignature = verifySlackSignature
