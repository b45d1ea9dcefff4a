package catalog

// Static course reference data. Plain lookup tables loaded once at init,
// keyed by the short course codes used in the cutoff dataset.

// CourseInfo bundles the reference data for one course code.
type CourseInfo struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Group       string `json:"group,omitempty"`
}

// CourseFullName resolves a course code to its full name, falling back to
// the raw code when no mapping exists.
func CourseFullName(code string) string {
	if name, ok := courseFullNames[code]; ok {
		return name
	}
	return code
}

// CourseDetails returns the full reference entry for a course code.
func CourseDetails(code string) CourseInfo {
	return CourseInfo{
		Code:        code,
		Name:        CourseFullName(code),
		Description: courseDescriptions[code],
		Group:       courseGroups[code],
	}
}

var courseFullNames = map[string]string{
	// Computer Science & IT Group
	"CSE":     "Computer Science & Engineering",
	"AI & ML": "Artificial Intelligence & Machine Learning",
	"ISE":     "Information Science & Engineering",
	"DS":      "Data Science & Engineering",
	"CY":      "Computer Science & Engineering (Cyber Security)",
	"CA":      "Computer Science & Engineering (AI & ML)",
	"CB":      "Computer Science & Business Systems",
	"CD":      "Computer Science & Design Engineering",
	"IC":      "Computer Science & Engineering (IoT & Cyber Security)",
	"LE":      "Computer Science & Engineering (AI & ML)",
	"LK":      "Computer Science & Engineering (IoT)",
	"YA":      "Computer Science & Engineering (Robotics)",
	"YB":      "Computer Science & Engineering (Data Analytics)",
	"CU":      "Information Science & Engineering",
	"LG":      "Computer Science & Engineering",
	"LH":      "Information Science & Engineering",
	"ZC":      "Computer Science & Engineering",
	"CF":      "Computer Science & Engineering (AI)",
	"BW":      "Computer Science & Engineering",
	"ZO":      "Computer Science & Business Systems",
	"CW":      "Information Technology Engineering",

	// Electronics & Communication Group
	"ECE": "Electronics & Communication Engineering",
	"EEE": "Electrical & Electronics Engineering",
	"EI":  "Electronics & Instrumentation Engineering",
	"ET":  "Electronics & Telecommunication Engineering",
	"EV":  "Electronics & Communication (VLSI Design)",
	"ES":  "Electronics & Computer Engineering",
	"TC":  "Telecommunication Engineering",
	"MD":  "Medical Electronics Engineering",
	"YC":  "Electronics & Communication (Embedded Systems & VLSI)",
	"YG":  "Electronics & Communication (VLSI & Embedded)",
	"BB":  "Electronics & Communication Engineering",
	"YF":  "Electrical & Computer Engineering",

	// Mechanical & Manufacturing Group
	"MECH": "Mechanical Engineering",
	"MM":   "Mechanical Engineering (Smart Manufacturing)",
	"AU":   "Automobile Engineering",
	"AM":   "Additive Manufacturing Engineering",
	"DB":   "Mechanical Engineering",
	"YI":   "Mechanical Engineering",
	"ZT":   "Mechanical Engineering (Smart Manufacturing)",

	// Aerospace & Aviation Group
	"AERO": "Aerospace Engineering",
	"AE":   "Aeronautical Engineering",
	"SE":   "Aerospace Engineering",
	"ZA":   "Aeronautical Engineering",

	// Civil & Architecture Group
	"CIVIL": "Civil Engineering",
	"CE":    "Civil Engineering",
	"CV":    "Civil & Environmental Engineering",
	"AR":    "Architecture",
	"YE":    "Civil Engineering (Construction & Sustainability)",
	"CK":    "Civil Engineering (Kannada Medium)",

	// Biotechnology & Medical Group
	"BT": "Biotechnology Engineering",
	"BR": "Biomedical & Robotics Engineering",
	"BO": "Biotechnology Engineering",

	// Chemical & Mining Group
	"CHEM": "Chemical Engineering",
	"CH":   "Chemical Engineering",
	"MI":   "Mining Engineering",
	"ZN":   "Pharmaceutical Engineering",

	// Robotics & AI Group
	"RA": "Robotics & Automation Engineering",
	"AI": "Artificial Intelligence Engineering",
	"AD": "Artificial Intelligence & Data Science Engineering",
	"RI": "Robotics & Artificial Intelligence Engineering",
	"DF": "Robotics & Automation Engineering",
	"DH": "Robotics & AI Engineering",
	"BG": "Artificial Intelligence & Data Science Engineering",
	"BZ": "Data Science Engineering",
	"DC": "Data Science Engineering",
	"BF": "Data Science Engineering",
	"DI": "Robotics Engineering",

	// Industrial & Management Group
	"IM": "Industrial Engineering & Management",
	"OT": "Industrial IoT Engineering",
	"EB": "Engineering Analysis & Technology",

	// Other Specializations
	"YH": "Engineering Design",
	"LJ": "Biomedical Systems Engineering",
	"ST": "Silk Technology Engineering",
	"TX": "Textile Engineering",
}

var courseDescriptions = map[string]string{
	// Computer Science & IT Group
	"CSE":     "Core computer science focusing on software development, algorithms, and system design",
	"AI & ML": "Advanced artificial intelligence concepts, machine learning algorithms, and data analytics",
	"ISE":     "Information systems, databases, and enterprise software development",
	"DS":      "Data science, big data analytics, statistical modeling, and data visualization",
	"CY":      "Network security, cryptography, and cyber defense systems",
	"CA":      "AI/ML applications in computer science",
	"CB":      "Computer science with business applications",
	"CD":      "Computer science with design principles",
	"IC":      "IoT systems and cybersecurity",
	"LE":      "AI/ML applications in computer science",
	"LK":      "IoT applications in computer science",
	"YA":      "Robotics applications in computer science",
	"YB":      "Data analytics and computer science",

	// Electronics & Communication Group
	"ECE": "Digital electronics, communication systems, and signal processing",
	"EEE": "Power systems, control systems, and electrical machines",
	"EI":  "Electronic instrumentation and control",
	"ET":  "Telecommunications and electronic systems",
	"EV":  "VLSI design and embedded systems",
	"ES":  "Electronics and computer systems integration",
	"TC":  "Telecommunication systems and networks",
	"MD":  "Medical electronics and instrumentation",
	"YC":  "Embedded systems and VLSI design",

	// Mechanical & Manufacturing Group
	"MECH": "Machine design, thermal engineering, and manufacturing processes",
	"MM":   "Smart manufacturing systems and automation",
	"AU":   "Automotive systems and design",
	"AM":   "Advanced manufacturing and 3D printing",

	// Aerospace & Aviation Group
	"AERO": "Aircraft design, aerodynamics, and aerospace systems",
	"AE":   "Aircraft and aerospace systems engineering",
	"SE":   "Space and aircraft engineering",
	"ZA":   "Aeronautical and aviation engineering",

	// Civil & Architecture Group
	"CIVIL": "Structural engineering, construction technology, and infrastructure design",
	"CE":    "Civil infrastructure and construction engineering",
	"CV":    "Civil engineering with environmental focus",
	"AR":    "Architectural design and planning",
	"YE":    "Sustainable civil engineering",

	// Biotechnology & Medical Group
	"BT": "Genetic engineering, biochemistry, and bioprocess technology",
	"BR": "Biomedical instrumentation and robotics",
	"BO": "Biotechnology and bioprocessing",

	// Chemical & Mining Group
	"CHEM": "Chemical processes, reactor design, and industrial chemistry",
	"CH":   "Chemical process engineering",
	"MI":   "Mining technology and operations",
	"ZN":   "Pharmaceutical process engineering",

	// Robotics & AI Group
	"RA": "Robot design, control systems, and industrial automation",
	"AI": "Artificial intelligence systems and applications",
	"AD": "AI and data science applications",
	"RI": "Robotics with AI applications",
	"DF": "Advanced robotics and automation",

	// Industrial & Management Group
	"IM": "Industrial processes and management",
	"OT": "Industrial Internet of Things",
	"EB": "Engineering analysis and technology",
}

var courseGroups = map[string]string{
	// Computer Science & IT
	"CSE":     "Computer Science & IT",
	"AI & ML": "Computer Science & IT",
	"ISE":     "Computer Science & IT",
	"DS":      "Computer Science & IT",
	"CY":      "Computer Science & IT",
	"CA":      "Computer Science & IT",
	"CB":      "Computer Science & IT",
	"CD":      "Computer Science & IT",
	"IC":      "Computer Science & IT",
	"LE":      "Computer Science & IT",
	"LK":      "Computer Science & IT",
	"YA":      "Computer Science & IT",
	"YB":      "Computer Science & IT",
	"CU":      "Computer Science & IT",
	"LG":      "Computer Science & IT",
	"LH":      "Computer Science & IT",
	"ZC":      "Computer Science & IT",
	"CF":      "Computer Science & IT",
	"BW":      "Computer Science & IT",
	"ZO":      "Computer Science & IT",
	"CW":      "Computer Science & IT",

	// Electronics & Communication
	"ECE": "Electronics & Communication",
	"EEE": "Electronics & Communication",
	"EI":  "Electronics & Communication",
	"ET":  "Electronics & Communication",
	"EV":  "Electronics & Communication",
	"ES":  "Electronics & Communication",
	"TC":  "Electronics & Communication",
	"MD":  "Electronics & Communication",
	"YC":  "Electronics & Communication",
	"YG":  "Electronics & Communication",
	"BB":  "Electronics & Communication",
	"YF":  "Electronics & Communication",

	// Mechanical & Manufacturing
	"MECH": "Mechanical & Manufacturing",
	"MM":   "Mechanical & Manufacturing",
	"AU":   "Mechanical & Manufacturing",
	"AM":   "Mechanical & Manufacturing",
	"DB":   "Mechanical & Manufacturing",
	"YI":   "Mechanical & Manufacturing",
	"ZT":   "Mechanical & Manufacturing",

	// Aerospace & Aviation
	"AERO": "Aerospace & Aviation",
	"AE":   "Aerospace & Aviation",
	"SE":   "Aerospace & Aviation",
	"ZA":   "Aerospace & Aviation",

	// Civil & Architecture
	"CIVIL": "Civil & Architecture",
	"CE":    "Civil & Architecture",
	"CV":    "Civil & Architecture",
	"AR":    "Civil & Architecture",
	"YE":    "Civil & Architecture",
	"CK":    "Civil & Architecture",

	// Biotechnology & Medical
	"BT": "Biotechnology & Medical",
	"BR": "Biotechnology & Medical",
	"BO": "Biotechnology & Medical",
	"LJ": "Biotechnology & Medical",

	// Chemical & Mining
	"CHEM": "Chemical & Mining",
	"CH":   "Chemical & Mining",
	"MI":   "Chemical & Mining",
	"ZN":   "Chemical & Mining",

	// Robotics & AI
	"RA": "Robotics & AI",
	"AI": "Robotics & AI",
	"AD": "Robotics & AI",
	"RI": "Robotics & AI",
	"DF": "Robotics & AI",
	"DH": "Robotics & AI",
	"BG": "Robotics & AI",
	"BZ": "Robotics & AI",
	"DC": "Robotics & AI",
	"BF": "Robotics & AI",
	"DI": "Robotics & AI",

	// Industrial & Management
	"IM": "Industrial & Management",
	"OT": "Industrial & Management",
	"EB": "Industrial & Management",

	// Other Specializations
	"YH": "Other Specializations",
	"ST": "Other Specializations",
	"TX": "Other Specializations",
}
