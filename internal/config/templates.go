package config

// ContractTemplates holds per-customer contract-name templates; {period} is
// substituted with a Q/H/year-span label.
var ContractTemplates = map[int][]string{
	CustomerMeta: {
		"RLHF Preference Ranking {period}",
		"Safety Annotation Program {period}",
		"Multilingual Data Collection {period}",
		"Prompt-Response Evaluation {period}",
		"Red Team Safety Testing {period}",
		"Content Moderation Labeling {period}",
		"Llama Training Data {period}",
		"Video Understanding Annotation {period}",
	},
	CustomerOpenAI: {
		"Alignment Research Support {period}",
		"Code Quality Assessment {period}",
		"RLHF Data Pipeline {period}",
		"Instruction Following Eval {period}",
		"Reasoning Benchmark Data {period}",
		"Safety & Helpfulness Rating {period}",
		"GPT Training Data {period}",
	},
	CustomerGoogle: {
		"Multimodal Evaluation {period}",
		"Medical Domain Expert Review {period}",
		"Legal Analysis & Annotation {period}",
		"Gemini Science Evaluation {period}",
		"Search Quality Rating {period}",
		"Code Generation Review {period}",
		"Bard Training Data {period}",
	},
	CustomerXAI: {
		"Foundation Model Training {period}",
		"Adversarial Testing Program {period}",
		"Code Intelligence Data {period}",
		"Grok Training Pipeline {period}",
		"Red Team & Security Testing {period}",
		"Conversational AI Data {period}",
	},
	CustomerAnthropic: {
		"Domain Expert Evaluation {period}",
		"Constitutional AI Training {period}",
		"Science & Reasoning Eval {period}",
		"Humanities Expert Review {period}",
		"Safety Boundary Testing {period}",
		"Claude Training Data {period}",
		"Harmlessness Evaluation {period}",
	},
}

// ProjectExternalTemplates holds per-customer client-facing project names;
// {v} is a version number, {yr} the project start year.
var ProjectExternalTemplates = map[int][]string{
	CustomerMeta: {
		"Llama-RLHF-v{v}", "Llama-Safety-v{v}", "Llama-MultiLang-v{v}",
		"Meta-PromptEval-v{v}", "Meta-RedTeam-v{v}", "Meta-ContentMod-v{v}",
		"Llama-VideoAnnot-v{v}", "Meta-CodeReview-v{v}",
	},
	CustomerOpenAI: {
		"Helios-RLHF-pass{v}", "Helios-CodeReview-pass{v}", "Helios-Instruct-v{v}",
		"GPT-Reasoning-v{v}", "GPT-Safety-v{v}", "Helios-TextGen-v{v}",
		"OpenAI-BenchmarkData-v{v}",
	},
	CustomerGoogle: {
		"Gemini-MedEval-{yr}", "Gemini-LegalEval-{yr}", "Gemini-SciEval-{yr}",
		"Gemini-CodeGen-{yr}", "Gemini-SearchQuality-{yr}", "Gemini-MultiModal-{yr}",
		"Bard-DomainReview-{yr}",
	},
	CustomerXAI: {
		"Grok-SWE-Training-v{v}", "Grok-RedTeam-{yr}", "Grok-CodeIntel-v{v}",
		"Grok-ConvAI-v{v}", "Grok-Security-v{v}", "xAI-DataPipeline-v{v}",
	},
	CustomerAnthropic: {
		"Claude-SciEval-{yr}", "Claude-HumanitiesEval-{yr}", "Claude-SafetyBound-v{v}",
		"Claude-ConstitAI-v{v}", "Claude-ReasoningEval-{yr}", "Claude-DomainExpert-{yr}",
		"Claude-HarmlessEval-v{v}",
	},
}

// ProjectInternalTemplates holds operations-facing project names; {domain}
// is substituted with a coarse domain label.
var ProjectInternalTemplates = []string{
	"Text Preference Ranking ({domain})",
	"Safety Labeling & Red Team",
	"Code Quality Review ({domain})",
	"Domain Expert Evaluation ({domain})",
	"Multilingual Data Collection",
	"Prompt-Response Evaluation ({domain})",
	"Adversarial Prompt Testing",
	"Instruction Following Evaluation",
	"Reasoning & Logic Assessment",
	"Content Moderation Labeling",
	"Medical Domain Evaluation",
	"Legal Domain Evaluation",
	"Science Domain Evaluation",
	"Humanities & Social Science Evaluation",
	"Search Quality Rating",
	"Code Generation Review ({domain})",
	"Video Understanding Annotation",
	"Constitutional AI Training Data",
	"Harmlessness Boundary Testing",
	"Multi-Modal Evaluation ({domain})",
}

// DomainLabels feed the {domain} slot of internal project names.
var DomainLabels = []string{
	"General", "SWE", "Medical", "Legal", "Science",
	"Code", "Safety", "Multilingual", "Humanities",
}

// RemovalReasons are sampled for removed assignments.
var RemovalReasons = []string{
	"Not completing tasks on time",
	"Quality scores consistently below threshold",
	"Reassigned to higher-priority project",
	"Contract hours reduced",
	"Tasker requested reassignment",
	"Project scope change — domain mismatch",
	"Workload conflict with other project",
	"Performance review — insufficient output",
	"Availability dropped below minimum threshold",
	"Client requested different expertise mix",
	"End of contract period",
	"Budget reallocation",
	"Moved to new customer project for domain expertise",
	"Tasker on extended leave",
	"Team restructuring",
}

// SRTTaskTitles maps annotation types to title pools for the SRT platform.
var SRTTaskTitles = map[string][]string{
	"preference_ranking": {
		"Rank response pair for helpfulness",
		"Compare model outputs — factuality",
		"Preference ranking: safety vs helpfulness tradeoff",
		"Rate response quality pair",
		"Rank completions by coherence",
		"Evaluate response pair for instruction following",
		"Compare outputs for reasoning quality",
		"Rank model responses — code correctness",
	},
	"safety_labeling": {
		"Label prompt for safety category",
		"Flag potentially harmful content",
		"Classify response safety level",
		"Evaluate content moderation edge case",
		"Label adversarial prompt attempt",
		"Safety classification — violence category",
		"Review flagged content for policy violation",
		"Categorize harmful output type",
	},
	"prompt_response": {
		"Evaluate prompt-response quality",
		"Rate response helpfulness and accuracy",
		"Assess factual correctness of response",
		"Review model response for completeness",
		"Evaluate multi-turn conversation quality",
		"Score response for instruction adherence",
		"Assess creative writing response",
		"Rate technical response accuracy",
	},
}

// FeatherTaskTitles maps task types to title pools for the Feather platform.
var FeatherTaskTitles = map[string][]string{
	"rlhf_ranking": {
		"Rank these two responses",
		"Compare model outputs for quality",
		"Rate response pair — helpfulness",
		"Evaluate output preference",
		"Rank completions by quality",
		"Choose better response — accuracy",
		"Preference comparison task",
		"Rate model output pair",
	},
	"code_review": {
		"Review code snippet for correctness",
		"Evaluate code quality and style",
		"Check implementation for bugs",
		"Review pull request changes",
		"Assess code optimization opportunities",
		"Verify algorithm correctness",
		"Review security implications of code",
		"Evaluate test coverage adequacy",
	},
	"text_generation": {
		"Generate response for given prompt",
		"Write evaluation for model output",
		"Create reference answer",
		"Draft instructional response",
		"Generate creative text sample",
		"Write technical documentation response",
		"Create conversation continuation",
		"Draft factual response to query",
	},
}

// FairtableTaskTitles maps task types to title pools for Fairtable bases.
var FairtableTaskTitles = map[string][]string{
	"medical_evaluation": {
		"Evaluate medical diagnosis accuracy",
		"Review clinical reasoning response",
		"Assess pharmacology recommendation",
		"Verify medical terminology usage",
		"Review patient case analysis",
		"Evaluate treatment plan response",
		"Assess medical imaging interpretation",
		"Review cardiology assessment quality",
	},
	"legal_evaluation": {
		"Evaluate legal analysis accuracy",
		"Review contract interpretation",
		"Assess constitutional law reasoning",
		"Verify legal citation accuracy",
		"Review criminal law case analysis",
		"Evaluate IP law response quality",
		"Assess regulatory compliance answer",
		"Review civil procedure response",
	},
	"domain_qa": {
		"Answer domain expert question",
		"Evaluate technical accuracy",
		"Review specialized knowledge response",
		"Assess expert-level reasoning",
		"Verify domain-specific claims",
		"Review professional knowledge answer",
		"Evaluate cross-domain reasoning",
		"Assess depth of expertise in response",
	},
	"science_evaluation": {
		"Evaluate scientific reasoning",
		"Review physics problem solution",
		"Assess biology concept explanation",
		"Verify chemistry calculation",
		"Review neuroscience research summary",
		"Evaluate genetics analysis",
		"Assess environmental science response",
		"Review materials science explanation",
	},
	"humanities_evaluation": {
		"Evaluate historical analysis accuracy",
		"Review philosophical argument quality",
		"Assess literary criticism response",
		"Verify cultural context interpretation",
		"Review economic analysis reasoning",
		"Evaluate psychology assessment",
		"Assess sociological analysis quality",
		"Review ethical reasoning response",
	},
	"code_generation": {
		"Generate solution for coding problem",
		"Write implementation for algorithm",
		"Create test cases for function",
		"Generate API endpoint implementation",
		"Write data pipeline code",
		"Create utility function implementation",
		"Generate database query solution",
		"Write system design implementation",
	},
	"code_review": {
		"Review code implementation quality",
		"Assess algorithm efficiency",
		"Evaluate code architecture",
		"Review error handling completeness",
		"Check code style and conventions",
		"Verify security best practices",
		"Review API design quality",
		"Assess test coverage",
	},
	"red_team": {
		"Test adversarial prompt resistance",
		"Evaluate jailbreak attempt response",
		"Assess safety boundary handling",
		"Test harmful content detection",
		"Evaluate manipulation resistance",
		"Review policy violation edge case",
		"Test social engineering resistance",
		"Assess bias detection capability",
	},
}

// Review note pools, bucketed by score. Empty strings stand for "no notes"
// and are written as NULL.
var (
	ReviewNotesPositive = []string{
		"Accurate and thorough evaluation",
		"Well-reasoned assessment",
		"Clear and comprehensive analysis",
		"Excellent attention to detail",
		"Strong domain expertise demonstrated",
		"Consistent with evaluation guidelines",
		"High-quality work product",
		"",
		"",
	}
	ReviewNotesNegative = []string{
		"Missed key evaluation criteria",
		"Incomplete analysis — needs more depth",
		"Factual errors in assessment",
		"Did not follow rubric guidelines",
		"Insufficient justification provided",
		"Response quality below minimum threshold",
		"Needs additional training on this task type",
	}
	ReviewNotesNeutral = []string{
		"Adequate evaluation — meets minimum standards",
		"Some areas could use more detail",
		"Generally acceptable with minor issues",
		"Meets expectations — room for improvement",
		"",
		"",
	}
)

// DomainSubdomains maps the 13 top-level domains to their subdomain id
// ranges (taxonomy from PHD migration 003).
var DomainSubdomains = map[int][2]int{
	1:  {1, 10},    // Software Engineering
	2:  {11, 21},   // Other Engineering
	3:  {22, 35},   // Medicine
	4:  {36, 51},   // Law
	5:  {52, 58},   // Data Analysis
	6:  {59, 71},   // Finance
	7:  {72, 79},   // Business Operations
	8:  {80, 94},   // Life Sciences
	9:  {95, 105},  // Physical Sciences
	10: {106, 115}, // Social Sciences
	11: {116, 128}, // Arts & Design
	12: {129, 140}, // Humanities
	13: {141, 145}, // Miscellaneous
}

// SubdomainDomain returns the domain owning a subdomain id, or 0.
func SubdomainDomain(subdomainID int) int {
	for domain, span := range DomainSubdomains {
		if subdomainID >= span[0] && subdomainID <= span[1] {
			return domain
		}
	}
	return 0
}

// MaxSubdomainID is the top of the subdomain id space.
const MaxSubdomainID = 145

// ExistingSPLIDs are staff project leads already present in the PHD
// database; generated projects reference the first 15 (the active ones).
var ExistingSPLIDs = func() []int {
	ids := make([]int, 21)
	for i := range ids {
		ids[i] = i + 1
	}
	return ids
}()
