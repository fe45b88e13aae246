package seed

import "MITSAssistant/models"

// Pages is the starter knowledge base loaded into an empty store.
var Pages = []models.ContentInput{
	{
		URL:   "https://www.mitsgwalior.ac.in/about",
		Title: "About MITS - Madhav Institute of Technology & Science",
		Content: `Madhav Institute of Technology & Science (MITS), Gwalior, is a premier technical institution established in 1984. MITS is affiliated to Rajiv Gandhi Proudyogiki Vishwavidyalaya (RGPV), Bhopal and approved by AICTE, New Delhi.

The institute offers undergraduate (B.Tech) programs in Computer Science & Engineering, Electronics & Communication Engineering, Mechanical Engineering, Civil Engineering, and Electrical Engineering. It also offers postgraduate (M.Tech) programs in various specializations.

MITS has state-of-the-art laboratories, a well-stocked library with over 50,000 books and journals, modern classrooms with ICT facilities, and excellent sports infrastructure. The campus is spread over 42 acres with hostels for both boys and girls.

The institute is known for its excellent placement record with leading companies like TCS, Infosys, Wipro, Accenture, Amazon, and many others recruiting students every year. MITS also has strong industry collaborations and organizes regular workshops, seminars, and technical festivals.`,
	},
	{
		URL:   "https://www.mitsgwalior.ac.in/admissions",
		Title: "Admissions - MITS Gwalior",
		Content: `MITS Gwalior offers admissions to B.Tech and M.Tech programs.

B.Tech Admission Process:
1. Candidates must have passed 10+2 with Physics, Chemistry, and Mathematics with minimum 50% marks (45% for SC/ST)
2. Valid JEE Main score is required
3. Admissions are through MP DTE (Directorate of Technical Education) counseling
4. Fill the online application form during the counseling period
5. Attend document verification and counseling as per schedule
6. Pay the admission fee to confirm your seat

Important Documents Required:
- 10th and 12th mark sheets and certificates
- JEE Main scorecard and admit card
- Transfer certificate and migration certificate
- Category certificate (if applicable)
- Domicile certificate
- Aadhar card and photographs

M.Tech Admission:
Admissions are based on GATE scores through MP DTE counseling.

Contact Admission Cell:
Phone: 0751-2409201
Email: admissions@mitsgwalior.in

Important Dates:
Application Period: June-July (for academic year starting in August)
Counseling: July-August
Classes Begin: August

Fee Structure:
B.Tech: Approximately Rs. 60,000 per year (subject to revision)
Hostel: Rs. 15,000 per year (approximately)`,
	},
	{
		URL:   "https://www.mitsgwalior.ac.in/departments",
		Title: "Departments and Courses - MITS",
		Content: `MITS offers the following undergraduate (B.Tech) programs:

1. Computer Science & Engineering (CSE)
   - Focus on programming, algorithms, database systems, AI, machine learning
   - 120 seats per year
   - Well-equipped labs with latest software and hardware

2. Electronics & Communication Engineering (ECE)
   - Digital electronics, VLSI, embedded systems, communication systems
   - 60 seats per year
   - Advanced labs for signal processing and communication

3. Mechanical Engineering (ME)
   - Thermodynamics, manufacturing, CAD/CAM, robotics
   - 90 seats per year
   - Modern workshops and testing facilities

4. Civil Engineering (CE)
   - Structural engineering, environmental engineering, transportation
   - 60 seats per year
   - Survey lab, CAD lab, and material testing lab

5. Electrical Engineering (EE)
   - Power systems, control systems, electrical machines
   - 60 seats per year
   - High voltage lab and power electronics lab

M.Tech Programs offered:
- Computer Science & Engineering
- Electronics & Communication Engineering
- Mechanical Engineering (Design, Thermal)
- Digital Communication
- Power Systems

All departments have highly qualified faculty with PhDs from premier institutions like IITs and NITs. Faculty members are actively involved in research and consultancy projects.`,
	},
	{
		URL:   "https://www.mitsgwalior.ac.in/facilities",
		Title: "Campus Facilities - MITS Gwalior",
		Content: `MITS Gwalior provides world-class facilities to students:

Library:
- Central library with over 50,000 books and 200+ journals
- Digital library with e-resources and online databases
- Reading rooms with capacity for 300 students
- Open from 8 AM to 8 PM on weekdays

Laboratories:
- Advanced computer labs with 500+ systems
- Specialized labs for each department
- Research labs for M.Tech students
- Internet facility with 100 Mbps connectivity

Hostels:
- Separate hostels for boys and girls
- Capacity for 800 students
- 24/7 security and warden supervision
- Mess facility providing nutritious meals
- Wi-Fi enabled rooms
- Common rooms with TV and indoor games

Sports Facilities:
- Football and cricket grounds
- Basketball and volleyball courts
- Indoor badminton hall
- Table tennis and chess facilities
- Annual sports fest and inter-college tournaments

Medical Facilities:
- Health center with qualified doctor
- First aid available 24/7
- Tie-up with nearby hospitals for emergencies

Transportation:
- Bus facility from major city points
- Parking for students with vehicles

Other Facilities:
- Bank ATM on campus
- Cafeteria and food courts
- Stationery shop
- Wi-Fi throughout campus
- Auditorium with 500 seating capacity
- Seminar halls and conference rooms`,
	},
	{
		URL:   "https://www.mitsgwalior.ac.in/contact",
		Title: "Contact Information - MITS Gwalior",
		Content: `Madhav Institute of Technology & Science (MITS)
Gola Ka Mandir, Gwalior - 474005, Madhya Pradesh, India

Contact Numbers:
Main Office: +91-751-2409201, 2409202
Admission Office: +91-751-2409203
Placement Cell: +91-751-2409204
Principal's Office: +91-751-2409205

Email Addresses:
General Enquiries: info@mitsgwalior.in
Admissions: admissions@mitsgwalior.in
Placements: placements@mitsgwalior.in
Principal: principal@mitsgwalior.in

Office Hours:
Monday to Friday: 9:00 AM - 5:00 PM
Saturday: 9:00 AM - 1:00 PM
Sunday: Closed

How to Reach:
By Air: Gwalior Airport (12 km from campus)
By Train: Gwalior Railway Station (6 km from campus)
By Road: Well connected by state and national highways

Campus Address for Navigation:
MITS Campus, Gola Ka Mandir Road
Near Birla Temple, Gwalior
Madhya Pradesh - 474005

For specific department enquiries, please visit the college during office hours or email the respective department.

Social Media:
Website: www.mitsgwalior.ac.in
Facebook: MITS Gwalior Official
LinkedIn: MITS Gwalior
Twitter: @MITSGwalior

For urgent matters outside office hours, please contact the security office: +91-751-2409299`,
	},
	{
		URL:   "https://www.mitsgwalior.ac.in/placements",
		Title: "Placements and Career - MITS Gwalior",
		Content: `MITS has an excellent placement record with top companies recruiting from campus every year.

Placement Statistics (2023-24):
- Overall Placement: 85%
- Highest Package: Rs. 28 LPA
- Average Package: Rs. 5.2 LPA
- Total Companies Visited: 120+

Top Recruiters:
IT Sector: TCS, Infosys, Wipro, Accenture, Cognizant, Tech Mahindra, HCL, Capgemini
Product Companies: Amazon, Microsoft, Google, Samsung, Oracle, Adobe
Core Engineering: L&T, Tata Motors, Mahindra, Bosch, ABB
Consulting: Deloitte, EY, KPMG

Placement Process:
1. Pre-placement training from 3rd year onwards
2. Resume building and mock interviews
3. Aptitude and technical training
4. Soft skills development
5. On-campus drives throughout final year
6. Pool campus opportunities with other institutes

Training Programs:
- Communication skills workshops
- Technical certification programs
- Coding competitions and hackathons
- Industry expert sessions
- Internship opportunities in summer

For placement enquiries:
Training & Placement Officer: Dr. R.K. Sharma
Email: placements@mitsgwalior.in
Phone: +91-751-2409204

Students are encouraged to participate in internships, projects, and technical events to enhance their employability.`,
	},
}
