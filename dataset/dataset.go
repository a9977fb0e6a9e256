// Package dataset holds the bundled read-only calendar content. It is the
// seed source for the content database and the offline fallback for clients.
package dataset

import "math-calendar-api/models"

// Months is the fixed twelve-month roster with featured mathematicians.
var Months = []models.Month{
	{ID: 1, Name: "January", Mathematician: "Srinivasa Ramanujan", Theme: "Number Properties"},
	{ID: 2, Name: "February", Mathematician: "C.R. Rao", Theme: "Expressions with 2s"},
	{ID: 3, Name: "March", Mathematician: "Shakuntala Devi", Theme: "Greek Numerical Prefixes"},
	{ID: 4, Name: "April", Mathematician: "D.R. Kaprekar", Theme: "Mathematical Symbols"},
	{ID: 5, Name: "May", Mathematician: "Aryabhata", Theme: "Powers & Exponents"},
	{ID: 6, Name: "June", Mathematician: "Bhaskara II", Theme: "Geometry Facts"},
	{ID: 7, Name: "July", Mathematician: "Brahmagupta", Theme: "Number Systems"},
	{ID: 8, Name: "August", Mathematician: "Satyendra Nath Bose", Theme: "Physics Constants"},
	{ID: 9, Name: "September", Mathematician: "P.C. Mahalanobis", Theme: "Statistics"},
	{ID: 10, Name: "October", Mathematician: "Harish-Chandra", Theme: "Algebra"},
	{ID: 11, Name: "November", Mathematician: "Manjul Bhargava", Theme: "Number Theory"},
	{ID: 12, Name: "December", Mathematician: "Madhava of Sangamagrama", Theme: "Infinite Series"},
}

// Data maps month ID to that month's ordered day questions. Day N of a month
// is Data[monthID][N-1].
var Data = map[int][]models.DayQuestion{
	1: {
		{Topic: "Prime Numbers", Question: "Which of these is a prime number?", Choices: []string{"3", "5", "7", "9"}, Answer: "7"},
		{Topic: "Taxicab Number", Question: "1729 is famous as the smallest number expressible as the sum of two cubes in how many ways?", Choices: []string{"1", "2", "3"}, Answer: "2"},
		{Topic: "Perfect Numbers", Question: "Which is the smallest perfect number?", Choices: []string{"6", "12", "28"}, Answer: "6"},
		{Topic: "Square Numbers", Question: "What is 13 squared?", Choices: []string{"149", "169", "196"}, Answer: "169"},
		{Topic: "Triangular Numbers", Question: "Which of these is a triangular number?", Choices: []string{"10", "11", "13"}, Answer: "10"},
		{Topic: "Palindromes", Question: "Which number reads the same forwards and backwards?", Choices: []string{"1221", "1223", "1232"}, Answer: "1221"},
		{Topic: "Factors", Question: "How many factors does 12 have?", Choices: []string{"4", "5", "6"}, Answer: "6"},
	},
	2: {
		{Topic: "Powers of 2", Question: "What is 2 to the power of 5?", Choices: []string{"16", "32", "64"}, Answer: "32"},
		{Topic: "Doubling", Question: "Double 2, then double again, then once more. What do you get?", Choices: []string{"8", "12", "16"}, Answer: "16"},
		{Topic: "Binary", Question: "What is the binary number 10 in decimal?", Choices: []string{"2", "10", "4"}, Answer: "2"},
		{Topic: "Even Numbers", Question: "Which expression always gives an even number?", Choices: []string{"2n", "2n+1", "n+2"}, Answer: "2n"},
		{Topic: "Squares of 2", Question: "What is 2 squared plus 2 cubed?", Choices: []string{"10", "12", "14"}, Answer: "12"},
		{Topic: "Halving", Question: "Half of 2 to the power of 10 is 2 to the power of what?", Choices: []string{"5", "9", "8"}, Answer: "9"},
	},
	3: {
		{Topic: "Prefixes", Question: "The prefix 'penta' means how many?", Choices: []string{"4", "5", "6"}, Answer: "5"},
		{Topic: "Prefixes", Question: "How many sides does a hexagon have?", Choices: []string{"5", "6", "7"}, Answer: "6"},
		{Topic: "Prefixes", Question: "A decade is how many years?", Choices: []string{"10", "100", "12"}, Answer: "10"},
		{Topic: "Prefixes", Question: "An octopus has how many arms?", Choices: []string{"6", "8", "10"}, Answer: "8"},
		{Topic: "Prefixes", Question: "The prefix 'kilo' multiplies by how much?", Choices: []string{"100", "1000", "10"}, Answer: "1000"},
		{Topic: "Prefixes", Question: "A triathlon has how many events?", Choices: []string{"2", "3", "4"}, Answer: "3"},
	},
	4: {
		{Topic: "Symbols", Question: "Which symbol means 'infinity'?", Choices: []string{"∞", "∑", "∫"}, Answer: "∞"},
		{Topic: "Symbols", Question: "The Greek letter π is closest to which value?", Choices: []string{"3.14", "2.72", "1.62"}, Answer: "3.14"},
		{Topic: "Symbols", Question: "What does the symbol √ mean?", Choices: []string{"Square root", "Division", "Sum"}, Answer: "Square root"},
		{Topic: "Kaprekar Constant", Question: "Kaprekar's famous constant for four-digit numbers is?", Choices: []string{"6174", "1729", "1089"}, Answer: "6174"},
		{Topic: "Symbols", Question: "Which symbol means 'is greater than'?", Choices: []string{">", "<", "="}, Answer: ">"},
		{Topic: "Symbols", Question: "The symbol Σ tells you to do what?", Choices: []string{"Add things up", "Multiply", "Subtract"}, Answer: "Add things up"},
	},
	5: {
		{Topic: "Exponents", Question: "What is 10 to the power of 3?", Choices: []string{"100", "1000", "30"}, Answer: "1000"},
		{Topic: "Exponents", Question: "Any number to the power of 0 equals?", Choices: []string{"0", "1", "itself"}, Answer: "1"},
		{Topic: "Exponents", Question: "What is 3 cubed?", Choices: []string{"9", "27", "81"}, Answer: "27"},
		{Topic: "Exponents", Question: "5 squared minus 4 squared is?", Choices: []string{"1", "9", "3"}, Answer: "9"},
		{Topic: "Exponents", Question: "Which is bigger: 2 to the 10th or 10 squared?", Choices: []string{"2 to the 10th", "10 squared", "They are equal"}, Answer: "2 to the 10th"},
		{Topic: "Zero", Question: "Aryabhata's place-value system made which digit essential?", Choices: []string{"0", "1", "9"}, Answer: "0"},
	},
	6: {
		{Topic: "Geometry", Question: "How many degrees are in a triangle's angles?", Choices: []string{"90", "180", "360"}, Answer: "180"},
		{Topic: "Geometry", Question: "A circle has how many degrees?", Choices: []string{"180", "270", "360"}, Answer: "360"},
		{Topic: "Geometry", Question: "How many faces does a cube have?", Choices: []string{"4", "6", "8"}, Answer: "6"},
		{Topic: "Geometry", Question: "A right angle measures how many degrees?", Choices: []string{"45", "90", "100"}, Answer: "90"},
		{Topic: "Geometry", Question: "Which shape has all sides equal and four right angles?", Choices: []string{"Square", "Rectangle", "Rhombus"}, Answer: "Square"},
		{Topic: "Geometry", Question: "How many edges does a triangle-based pyramid have?", Choices: []string{"4", "6", "8"}, Answer: "6"},
	},
	7: {
		{Topic: "Number Systems", Question: "Brahmagupta gave rules for arithmetic with which number?", Choices: []string{"Zero", "Pi", "One"}, Answer: "Zero"},
		{Topic: "Number Systems", Question: "Roman numeral X equals?", Choices: []string{"5", "10", "50"}, Answer: "10"},
		{Topic: "Number Systems", Question: "How many digits does the decimal system use?", Choices: []string{"9", "10", "12"}, Answer: "10"},
		{Topic: "Number Systems", Question: "Negative times negative equals?", Choices: []string{"Negative", "Positive", "Zero"}, Answer: "Positive"},
		{Topic: "Number Systems", Question: "Roman numeral L equals?", Choices: []string{"50", "100", "500"}, Answer: "50"},
		{Topic: "Number Systems", Question: "Base 16 is also called?", Choices: []string{"Hexadecimal", "Octal", "Binary"}, Answer: "Hexadecimal"},
	},
	8: {
		{Topic: "Physics", Question: "The speed of light is about how many km per second?", Choices: []string{"300,000", "30,000", "3,000,000"}, Answer: "300,000"},
		{Topic: "Physics", Question: "Water freezes at how many degrees Celsius?", Choices: []string{"0", "32", "100"}, Answer: "0"},
		{Topic: "Physics", Question: "Which particle is named after S.N. Bose?", Choices: []string{"Boson", "Fermion", "Photon"}, Answer: "Boson"},
		{Topic: "Physics", Question: "Water boils at how many degrees Celsius at sea level?", Choices: []string{"90", "100", "110"}, Answer: "100"},
		{Topic: "Physics", Question: "Gravity on Earth accelerates things at about?", Choices: []string{"9.8 m/s²", "5 m/s²", "15 m/s²"}, Answer: "9.8 m/s²"},
		{Topic: "Physics", Question: "Sound travels fastest through?", Choices: []string{"Solids", "Air", "Vacuum"}, Answer: "Solids"},
	},
	9: {
		{Topic: "Statistics", Question: "The middle value of an ordered list is called the?", Choices: []string{"Mean", "Median", "Mode"}, Answer: "Median"},
		{Topic: "Statistics", Question: "The most frequent value in a list is the?", Choices: []string{"Mode", "Mean", "Range"}, Answer: "Mode"},
		{Topic: "Statistics", Question: "What is the mean of 2, 4 and 6?", Choices: []string{"3", "4", "5"}, Answer: "4"},
		{Topic: "Statistics", Question: "A fair coin lands heads with probability?", Choices: []string{"1/2", "1/3", "1/4"}, Answer: "1/2"},
		{Topic: "Statistics", Question: "The range of 3, 7, 10 is?", Choices: []string{"7", "10", "3"}, Answer: "7"},
		{Topic: "Statistics", Question: "A standard die has how many faces?", Choices: []string{"4", "6", "8"}, Answer: "6"},
	},
	10: {
		{Topic: "Algebra", Question: "If x + 3 = 7, what is x?", Choices: []string{"3", "4", "10"}, Answer: "4"},
		{Topic: "Algebra", Question: "What is 2x when x = 5?", Choices: []string{"7", "10", "25"}, Answer: "10"},
		{Topic: "Algebra", Question: "If 3x = 12, what is x?", Choices: []string{"3", "4", "9"}, Answer: "4"},
		{Topic: "Algebra", Question: "x squared, when x = 6, equals?", Choices: []string{"12", "36", "66"}, Answer: "36"},
		{Topic: "Algebra", Question: "What is x if x/2 = 8?", Choices: []string{"4", "16", "10"}, Answer: "16"},
		{Topic: "Algebra", Question: "Simplify: x + x + x", Choices: []string{"3x", "x³", "x+3"}, Answer: "3x"},
	},
	11: {
		{Topic: "Number Theory", Question: "How many prime numbers are even?", Choices: []string{"0", "1", "2"}, Answer: "1"},
		{Topic: "Number Theory", Question: "The sum of two odd numbers is always?", Choices: []string{"Odd", "Even", "Prime"}, Answer: "Even"},
		{Topic: "Number Theory", Question: "What is the greatest common divisor of 12 and 18?", Choices: []string{"3", "6", "9"}, Answer: "6"},
		{Topic: "Number Theory", Question: "Which number is divisible by 3?", Choices: []string{"124", "126", "127"}, Answer: "126"},
		{Topic: "Number Theory", Question: "The smallest prime number is?", Choices: []string{"0", "1", "2"}, Answer: "2"},
		{Topic: "Number Theory", Question: "What is the least common multiple of 4 and 6?", Choices: []string{"12", "24", "10"}, Answer: "12"},
	},
	12: {
		{Topic: "Infinite Series", Question: "1/2 + 1/4 + 1/8 + ... sums to?", Choices: []string{"1", "2", "Infinity"}, Answer: "1"},
		{Topic: "Infinite Series", Question: "Madhava found a series for which famous constant?", Choices: []string{"π", "e", "φ"}, Answer: "π"},
		{Topic: "Infinite Series", Question: "1 + 1/2 + 1/3 + 1/4 + ... (the harmonic series) does what?", Choices: []string{"Grows forever", "Sums to 2", "Sums to e"}, Answer: "Grows forever"},
		{Topic: "Sequences", Question: "What comes next: 1, 1, 2, 3, 5, 8, ...?", Choices: []string{"11", "13", "12"}, Answer: "13"},
		{Topic: "Sequences", Question: "What comes next: 2, 4, 8, 16, ...?", Choices: []string{"24", "32", "30"}, Answer: "32"},
		{Topic: "Infinite Series", Question: "A series that settles to a fixed value is called?", Choices: []string{"Convergent", "Divergent", "Periodic"}, Answer: "Convergent"},
	},
}

// TotalQuestions counts every day question across all months.
func TotalQuestions() int {
	total := 0
	for _, days := range Data {
		total += len(days)
	}
	return total
}
