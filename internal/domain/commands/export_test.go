package commands

// DescribeReadError exports describeReadError for testing.
var DescribeReadError = describeReadError //nolint:gochecknoglobals // test export
