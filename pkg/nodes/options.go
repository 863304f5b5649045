package nodes

// Regions offered by the region input
var regionOptions = []Option{
	{Label: "af-south-1", Name: "af-south-1"},
	{Label: "ap-east-1", Name: "ap-east-1"},
	{Label: "ap-northeast-1", Name: "ap-northeast-1"},
	{Label: "ap-northeast-2", Name: "ap-northeast-2"},
	{Label: "ap-northeast-3", Name: "ap-northeast-3"},
	{Label: "ap-south-1", Name: "ap-south-1"},
	{Label: "ap-south-2", Name: "ap-south-2"},
	{Label: "ap-southeast-1", Name: "ap-southeast-1"},
	{Label: "ap-southeast-2", Name: "ap-southeast-2"},
	{Label: "ap-southeast-3", Name: "ap-southeast-3"},
	{Label: "ap-southeast-4", Name: "ap-southeast-4"},
	{Label: "ap-southeast-5", Name: "ap-southeast-5"},
	{Label: "ap-southeast-6", Name: "ap-southeast-6"},
	{Label: "ca-central-1", Name: "ca-central-1"},
	{Label: "ca-west-1", Name: "ca-west-1"},
	{Label: "cn-north-1", Name: "cn-north-1"},
	{Label: "cn-northwest-1", Name: "cn-northwest-1"},
	{Label: "eu-central-1", Name: "eu-central-1"},
	{Label: "eu-central-2", Name: "eu-central-2"},
	{Label: "eu-north-1", Name: "eu-north-1"},
	{Label: "eu-south-1", Name: "eu-south-1"},
	{Label: "eu-south-2", Name: "eu-south-2"},
	{Label: "eu-west-1", Name: "eu-west-1"},
	{Label: "eu-west-2", Name: "eu-west-2"},
	{Label: "eu-west-3", Name: "eu-west-3"},
	{Label: "il-central-1", Name: "il-central-1"},
	{Label: "me-central-1", Name: "me-central-1"},
	{Label: "me-south-1", Name: "me-south-1"},
	{Label: "sa-east-1", Name: "sa-east-1"},
	{Label: "us-east-1", Name: "us-east-1"},
	{Label: "us-east-2", Name: "us-east-2"},
	{Label: "us-gov-east-1", Name: "us-gov-east-1"},
	{Label: "us-gov-west-1", Name: "us-gov-west-1"},
	{Label: "us-west-1", Name: "us-west-1"},
	{Label: "us-west-2", Name: "us-west-2"},
}

// Language models offered when the catalog is not queried
var textModelOptions = []Option{
	{Label: "amazon.titan-tg1-large", Name: "amazon.titan-tg1-large"},
	{Label: "amazon.titan-e1t-medium", Name: "amazon.titan-e1t-medium"},
	{Label: "stability.stable-diffusion-xl", Name: "stability.stable-diffusion-xl"},
	{Label: "ai21.j2-grande-instruct", Name: "ai21.j2-grande-instruct"},
	{Label: "ai21.j2-jumbo-instruct", Name: "ai21.j2-jumbo-instruct"},
	{Label: "ai21.j2-mid", Name: "ai21.j2-mid"},
	{Label: "ai21.j2-ultra", Name: "ai21.j2-ultra"},
	{Label: "anthropic.claude-instant-v1", Name: "anthropic.claude-instant-v1"},
	{Label: "anthropic.claude-v1", Name: "anthropic.claude-v1"},
	{Label: "anthropic.claude-v2", Name: "anthropic.claude-v2"},
}

var embeddingModelOptions = []Option{
	{Label: "amazon.titan-e1t-medium", Name: "amazon.titan-e1t-medium"},
}

func optionNames(options []Option) []string {
	names := make([]string, len(options))
	for i, o := range options {
		names[i] = o.Name
	}
	return names
}
