package taskergen

// Location is one sampling candidate for a tasker's home address.
type Location struct {
	City     string
	State    string
	Postal   string
	Country  string
	Timezone string
}

// LanguageSkill pairs a language with a proficiency level.
type LanguageSkill struct {
	Language    string
	Proficiency string
}

// DomainProfile is one sampling candidate for a tasker's expertise: the
// subdomains they can work in and the external job title shown to customers.
type DomainProfile struct {
	SubdomainIDs []int
	JobTitle     string
	Domain       string
}

var firstNamesMale = []string{
	"James", "John", "Robert", "Michael", "David", "William", "Richard", "Joseph",
	"Thomas", "Daniel", "Matthew", "Anthony", "Mark", "Steven", "Andrew", "Joshua",
	"Kevin", "Brian", "Jason", "Ryan", "Jacob", "Eric", "Jonathan", "Justin",
	"Carlos", "Miguel", "Luis", "Jorge", "Rafael", "Diego", "Alejandro", "Fernando",
	"Javier", "Mateo", "Santiago", "Rodrigo", "Hector", "Oscar",
	"Wei", "Jun", "Hao", "Ming", "Kai", "Chen", "Jian", "Liang",
	"Hiroshi", "Kenji", "Yuto", "Haruto", "Ren", "Kaito",
	"Min-Jun", "Ji-Hoon", "Hyun-Woo", "Do-Yun",
	"Rajesh", "Vikram", "Amit", "Arun", "Deepak", "Ravi", "Nikhil", "Arjun",
	"Rohan", "Karthik", "Rahul", "Gaurav",
	"Kwame", "Olumide", "Adewale", "Emeka", "Tunde", "Musa", "Ibrahim",
	"Youssef", "Omar", "Hassan",
	"Klaus", "Wolfgang", "Stefan", "Pierre", "Laurent", "Antoine",
	"Luca", "Marco", "Alessandro", "Matteo",
	"Piotr", "Marek", "Jakub", "Dmitri", "Alexei", "Nikolai",
	"Lars", "Anders", "Erik", "Sven",
	"Ahmad", "Khalid", "Tariq", "Samir", "Ali", "Hamza",
	"Gustavo", "Felipe", "Thiago", "Bruno", "Vinicius",
}

var firstNamesFemale = []string{
	"Mary", "Patricia", "Jennifer", "Linda", "Elizabeth", "Susan", "Jessica",
	"Sarah", "Karen", "Lisa", "Sandra", "Ashley", "Emily", "Michelle", "Amanda",
	"Melissa", "Stephanie", "Rebecca", "Laura", "Amy", "Angela", "Anna", "Emma",
	"Nicole", "Samantha", "Katherine", "Rachel",
	"Maria", "Carmen", "Ana", "Lucia", "Sofia", "Valentina", "Isabella",
	"Gabriela", "Camila", "Mariana", "Daniela", "Alejandra", "Natalia", "Elena",
	"Mei", "Lan", "Jing", "Yue", "Ling", "Fang", "Li",
	"Yuki", "Sakura", "Aiko", "Hana", "Rin",
	"Soo-Jin", "Min-Ji", "Ji-Yeon",
	"Priya", "Ananya", "Kavita", "Neha", "Pooja", "Shreya", "Divya", "Meera",
	"Anjali", "Swati",
	"Amina", "Fatima", "Aisha", "Zainab", "Ngozi", "Folake",
	"Ingrid", "Astrid", "Freya", "Greta", "Amelie", "Celine",
	"Katarina", "Petra", "Monika", "Ewa", "Olga", "Natasha", "Svetlana",
	"Giulia", "Chiara", "Francesca", "Martina",
	"Layla", "Nour", "Rania", "Maryam", "Yasmin", "Salma",
	"Juliana", "Beatriz", "Larissa", "Bianca",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
	"Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson",
	"Thomas", "Taylor", "Moore", "Jackson", "Martin", "Lee", "Perez", "Thompson",
	"White", "Harris", "Sanchez", "Clark", "Ramirez", "Lewis", "Robinson",
	"Walker", "Young", "King", "Wright", "Scott", "Torres", "Hill", "Adams",
	"Green", "Baker", "Nelson", "Carter", "Mitchell", "Murphy", "O'Brien",
	"Wang", "Li", "Zhang", "Liu", "Chen", "Yang", "Huang", "Zhao", "Wu", "Zhou",
	"Xu", "Sun", "Lin", "Luo", "Tang",
	"Tanaka", "Suzuki", "Watanabe", "Takahashi", "Ito", "Yamamoto", "Nakamura",
	"Kobayashi", "Saito", "Kato",
	"Kim", "Park", "Choi", "Jung", "Kang", "Yoon", "Han", "Shin",
	"Patel", "Sharma", "Singh", "Kumar", "Gupta", "Mehta", "Shah", "Joshi",
	"Reddy", "Nair", "Rao", "Das", "Iyer", "Verma", "Kapoor", "Banerjee",
	"Okafor", "Adeyemi", "Nwosu", "Ibrahim", "Diallo", "Traore", "Mensah",
	"Asante", "Owusu", "Bello",
	"Schmidt", "Schneider", "Fischer", "Weber", "Meyer", "Wagner", "Becker",
	"Koch", "Richter", "Wolf", "Zimmermann",
	"Dubois", "Laurent", "Moreau", "Bernard", "Leroy", "Girard",
	"Rossi", "Russo", "Ferrari", "Esposito", "Bianchi", "Romano",
	"Kowalski", "Nowak", "Kaminski", "Lewandowski",
	"Petrov", "Ivanov", "Volkov", "Sokolov",
	"Johansson", "Eriksson", "Nilsson", "Larsson",
	"Al-Rashid", "Al-Farsi", "Khoury", "Haddad", "Mansour", "Nasser",
	"Fernandez", "Mendez", "Reyes", "Flores", "Morales", "Ortiz", "Gutierrez",
	"Rojas", "Vargas", "Castillo", "Jimenez", "Herrera", "Medina",
	"Silva", "Santos", "Oliveira", "Souza", "Costa", "Ferreira", "Pereira",
}

var middleInitials = []string{
	"A", "B", "C", "D", "E", "F", "G", "H", "J", "K",
	"L", "M", "N", "P", "R", "S", "T", "W",
}

var locations = []Location{
	{"New York", "NY", "10001", "United States", "America/New_York"},
	{"Boston", "MA", "02101", "United States", "America/New_York"},
	{"Atlanta", "GA", "30301", "United States", "America/New_York"},
	{"Chicago", "IL", "60601", "United States", "America/Chicago"},
	{"Houston", "TX", "77001", "United States", "America/Chicago"},
	{"Austin", "TX", "73301", "United States", "America/Chicago"},
	{"Denver", "CO", "80201", "United States", "America/Denver"},
	{"San Francisco", "CA", "94105", "United States", "America/Los_Angeles"},
	{"Los Angeles", "CA", "90001", "United States", "America/Los_Angeles"},
	{"Seattle", "WA", "98101", "United States", "America/Los_Angeles"},
	{"Toronto", "ON", "M5V 3L9", "Canada", "America/Toronto"},
	{"Vancouver", "BC", "V6B 1A1", "Canada", "America/Vancouver"},
	{"London", "England", "EC1A 1BB", "United Kingdom", "Europe/London"},
	{"Cambridge", "England", "CB2 1TN", "United Kingdom", "Europe/London"},
	{"Berlin", "Berlin", "10115", "Germany", "Europe/Berlin"},
	{"Munich", "Bavaria", "80331", "Germany", "Europe/Berlin"},
	{"Paris", "Ile-de-France", "75001", "France", "Europe/Paris"},
	{"Amsterdam", "North Holland", "1012", "Netherlands", "Europe/Amsterdam"},
	{"Madrid", "Madrid", "28001", "Spain", "Europe/Madrid"},
	{"Barcelona", "Catalonia", "08001", "Spain", "Europe/Madrid"},
	{"Rome", "Lazio", "00100", "Italy", "Europe/Rome"},
	{"Milan", "Lombardy", "20121", "Italy", "Europe/Rome"},
	{"Warsaw", "Masovia", "00-001", "Poland", "Europe/Warsaw"},
	{"Stockholm", "Stockholm", "111 51", "Sweden", "Europe/Stockholm"},
	{"Zurich", "Zurich", "8001", "Switzerland", "Europe/Zurich"},
	{"Bangalore", "Karnataka", "560001", "India", "Asia/Kolkata"},
	{"Mumbai", "Maharashtra", "400001", "India", "Asia/Kolkata"},
	{"Delhi", "Delhi", "110001", "India", "Asia/Kolkata"},
	{"Hyderabad", "Telangana", "500001", "India", "Asia/Kolkata"},
	{"Tokyo", "Tokyo", "100-0001", "Japan", "Asia/Tokyo"},
	{"Seoul", "Seoul", "04524", "South Korea", "Asia/Seoul"},
	{"Beijing", "Beijing", "100000", "China", "Asia/Shanghai"},
	{"Shanghai", "Shanghai", "200000", "China", "Asia/Shanghai"},
	{"Singapore", "Singapore", "018956", "Singapore", "Asia/Singapore"},
	{"Sydney", "NSW", "2000", "Australia", "Australia/Sydney"},
	{"Melbourne", "VIC", "3000", "Australia", "Australia/Melbourne"},
	{"Sao Paulo", "SP", "01310-100", "Brazil", "America/Sao_Paulo"},
	{"Mexico City", "CDMX", "06600", "Mexico", "America/Mexico_City"},
	{"Bogota", "Cundinamarca", "110111", "Colombia", "America/Bogota"},
	{"Buenos Aires", "Buenos Aires", "C1002", "Argentina", "America/Argentina/Buenos_Aires"},
	{"Lagos", "Lagos", "101233", "Nigeria", "Africa/Lagos"},
	{"Nairobi", "Nairobi", "00100", "Kenya", "Africa/Nairobi"},
	{"Cape Town", "Western Cape", "8001", "South Africa", "Africa/Johannesburg"},
	{"Cairo", "Cairo", "11511", "Egypt", "Africa/Cairo"},
	{"Dubai", "Dubai", "00000", "United Arab Emirates", "Asia/Dubai"},
	{"Tel Aviv", "Tel Aviv", "6100000", "Israel", "Asia/Jerusalem"},
	{"Istanbul", "Istanbul", "34000", "Turkey", "Europe/Istanbul"},
	{"Manila", "Metro Manila", "1000", "Philippines", "Asia/Manila"},
	{"Taipei", "Taipei", "100", "Taiwan", "Asia/Taipei"},
	{"Jakarta", "DKI Jakarta", "10110", "Indonesia", "Asia/Jakarta"},
	{"Karachi", "Sindh", "74200", "Pakistan", "Asia/Karachi"},
	{"Moscow", "Moscow", "101000", "Russia", "Europe/Moscow"},
}

var countryLanguages = map[string][]LanguageSkill{
	"United States":        {{"English", "native"}},
	"Canada":               {{"English", "native"}},
	"United Kingdom":       {{"English", "native"}},
	"Germany":              {{"German", "native"}, {"English", "fluent"}},
	"France":               {{"French", "native"}, {"English", "fluent"}},
	"Netherlands":          {{"Dutch", "native"}, {"English", "fluent"}},
	"Spain":                {{"Spanish", "native"}, {"English", "fluent"}},
	"Italy":                {{"Italian", "native"}, {"English", "fluent"}},
	"Poland":               {{"Polish", "native"}, {"English", "fluent"}},
	"Sweden":               {{"Swedish", "native"}, {"English", "fluent"}},
	"Switzerland":          {{"German", "native"}, {"English", "fluent"}},
	"India":                {{"Hindi", "native"}, {"English", "fluent"}},
	"Japan":                {{"Japanese", "native"}, {"English", "fluent"}},
	"South Korea":          {{"Korean", "native"}, {"English", "fluent"}},
	"China":                {{"Mandarin", "native"}, {"English", "fluent"}},
	"Singapore":            {{"English", "native"}, {"Mandarin", "fluent"}},
	"Australia":            {{"English", "native"}},
	"Brazil":               {{"Portuguese", "native"}, {"English", "fluent"}},
	"Mexico":               {{"Spanish", "native"}, {"English", "fluent"}},
	"Colombia":             {{"Spanish", "native"}, {"English", "fluent"}},
	"Argentina":            {{"Spanish", "native"}, {"English", "fluent"}},
	"Nigeria":              {{"English", "native"}, {"Yoruba", "fluent"}},
	"Kenya":                {{"English", "native"}, {"Swahili", "fluent"}},
	"South Africa":         {{"English", "native"}, {"Afrikaans", "fluent"}},
	"Egypt":                {{"Arabic", "native"}, {"English", "fluent"}},
	"United Arab Emirates": {{"Arabic", "native"}, {"English", "fluent"}},
	"Israel":               {{"Hebrew", "native"}, {"English", "fluent"}},
	"Turkey":               {{"Turkish", "native"}, {"English", "fluent"}},
	"Philippines":          {{"Filipino", "native"}, {"English", "fluent"}},
	"Taiwan":               {{"Mandarin", "native"}, {"English", "fluent"}},
	"Indonesia":            {{"Indonesian", "native"}, {"English", "fluent"}},
	"Pakistan":             {{"Urdu", "native"}, {"English", "fluent"}},
	"Russia":               {{"Russian", "native"}, {"English", "fluent"}},
}

var extraLanguages = []LanguageSkill{
	{"Spanish", "intermediate"}, {"French", "intermediate"}, {"German", "intermediate"},
	{"Mandarin", "intermediate"}, {"Japanese", "intermediate"}, {"Korean", "intermediate"},
	{"Portuguese", "intermediate"}, {"Arabic", "intermediate"}, {"Hindi", "intermediate"},
	{"Italian", "intermediate"}, {"Russian", "intermediate"},
	{"Spanish", "fluent"}, {"French", "fluent"}, {"German", "fluent"},
	{"Mandarin", "fluent"}, {"Portuguese", "fluent"},
}

var domainProfiles = []DomainProfile{
	{[]int{1, 2}, "Software Engineer", "swe"},
	{[]int{1, 3}, "Full Stack Engineer", "swe"},
	{[]int{1, 4}, "Frontend Developer", "swe"},
	{[]int{1, 5}, "Backend Engineer", "swe"},
	{[]int{1, 6}, "Security Engineer", "swe"},
	{[]int{1, 7}, "Platform Engineer", "swe"},
	{[]int{1, 8}, "Mobile Developer", "swe"},
	{[]int{2, 54}, "ML Engineer", "swe"},
	{[]int{2, 56}, "NLP Engineer", "swe"},
	{[]int{1, 2, 3}, "Senior Software Engineer", "swe"},
	{[]int{1, 5, 9}, "Senior Backend Engineer", "swe"},
	{[]int{1, 2, 7}, "Staff Engineer", "swe"},
	{[]int{11}, "Mechanical Engineer", "eng"},
	{[]int{12}, "Electrical Engineer", "eng"},
	{[]int{17}, "Aerospace Engineer", "eng"},
	{[]int{18}, "Biomedical Engineer", "eng"},
	{[]int{20}, "Robotics Engineer", "eng"},
	{[]int{22, 28}, "Cardiologist", "med"},
	{[]int{22, 27}, "Neurologist", "med"},
	{[]int{22, 29}, "Oncologist", "med"},
	{[]int{22, 30}, "Radiologist", "med"},
	{[]int{22, 24}, "Pediatrician", "med"},
	{[]int{22, 26}, "Psychiatrist", "med"},
	{[]int{22, 32}, "Epidemiologist", "med"},
	{[]int{36, 37}, "Attorney", "law"},
	{[]int{39, 40}, "Corporate Lawyer", "law"},
	{[]int{37, 38}, "Litigation Attorney", "law"},
	{[]int{41, 50}, "IP Attorney", "law"},
	{[]int{46}, "Tax Attorney", "law"},
	{[]int{48}, "Immigration Attorney", "law"},
	{[]int{52, 54, 55}, "Data Scientist", "data"},
	{[]int{54, 56}, "ML Researcher", "data"},
	{[]int{57}, "Data Engineer", "data"},
	{[]int{52, 58}, "Data Analyst", "data"},
	{[]int{59, 65}, "Financial Analyst", "fin"},
	{[]int{64, 65}, "Quantitative Analyst", "fin"},
	{[]int{66, 67}, "Accountant", "fin"},
	{[]int{72, 75}, "Operations Manager", "biz"},
	{[]int{78}, "Business Strategy Consultant", "biz"},
	{[]int{80, 81}, "Molecular Biologist", "lifesci"},
	{[]int{80, 85}, "Geneticist", "lifesci"},
	{[]int{88, 92}, "Neuroscientist", "lifesci"},
	{[]int{90}, "Bioinformatics Scientist", "lifesci"},
	{[]int{95, 96}, "Physicist", "physci"},
	{[]int{98}, "Chemist", "physci"},
	{[]int{99, 100}, "Geologist", "physci"},
	{[]int{106}, "Economist", "socsci"},
	{[]int{108}, "Psychologist", "socsci"},
	{[]int{110, 112}, "Political Scientist", "socsci"},
	{[]int{117, 119}, "UX/UI Designer", "arts"},
	{[]int{122}, "Architect", "arts"},
	{[]int{127}, "Game Designer", "arts"},
	{[]int{129, 133}, "Philosophy Professor", "hum"},
	{[]int{130}, "Historian", "hum"},
	{[]int{131}, "Literature Professor", "hum"},
	{[]int{141}, "Educator", "misc"},
	{[]int{143}, "Librarian", "misc"},
}

// domainWeights skew sampling toward the domains customers actually buy.
var domainWeights = map[string]int{
	"swe":     30,
	"eng":     8,
	"med":     12,
	"law":     10,
	"data":    8,
	"fin":     6,
	"biz":     4,
	"lifesci": 6,
	"physci":  4,
	"socsci":  4,
	"arts":    3,
	"hum":     3,
	"misc":    2,
}

var internalRolesOptions = []string{
	"{tasker}", "{tasker}", "{tasker}", "{tasker}", "{tasker}", "{tasker}",
	"{tasker,reviewer}", "{tasker,reviewer}", "{reviewer}", "{tasker}",
	"", // NULL
}

var streetNames = []string{
	"Main St", "Oak Ave", "Park Blvd", "Elm St", "Cedar Ln", "Maple Dr",
	"Pine St", "Walnut Ave", "Market St", "Church St", "Broadway",
	"Washington Ave", "Lake Dr", "Highland Ave", "Sunset Blvd",
	"River Rd", "College Ave", "Mill St", "Spring St", "Union St",
}

var emailDomains = []string{
	"gmail.com", "gmail.com", "gmail.com", "gmail.com",
	"outlook.com", "outlook.com",
	"yahoo.com",
	"protonmail.com",
	"icloud.com",
	"hotmail.com",
}
