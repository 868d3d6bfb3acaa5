package common

// KV store keys for persisted client-side state. Values are serialized
// JSON blobs (credentials) or boolean flags (storage modes).
const (
	KeyAWSCredentials  = "aws_credentials"
	KeyOORTCredentials = "oort_credentials"
	KeyUseRealAWS      = "use_real_aws"
	KeyUseRealOORT     = "use_real_oort"
)
