package store

const (
	createUser = `INSERT INTO users (name, email, password_hash, role)
    VALUES ($1, $2, $3, $4)
    RETURNING user_id, name, email, password_hash, role, created_at, updated_at;`

	findUserByEmail = `SELECT user_id, name, email, password_hash, role, created_at, updated_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, name, email, password_hash, role, created_at, updated_at
    FROM users
    WHERE user_id = $1;`

	listUsers = `SELECT user_id, name, email, password_hash, role, created_at, updated_at
    FROM users
    ORDER BY user_id;`

	deleteUser     = `DELETE FROM users WHERE user_id = $1;`
	deleteAllUsers = `DELETE FROM users;`

	createContact = `INSERT INTO contacts (firstname, lastname, email, phone, message)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING contact_id, firstname, lastname, email, phone, message, created_at, updated_at;`

	findContactByID = `SELECT contact_id, firstname, lastname, email, phone, message, created_at, updated_at
    FROM contacts
    WHERE contact_id = $1;`

	listContacts = `SELECT contact_id, firstname, lastname, email, phone, message, created_at, updated_at
    FROM contacts
    ORDER BY created_at DESC;`

	deleteContact     = `DELETE FROM contacts WHERE contact_id = $1;`
	deleteAllContacts = `DELETE FROM contacts;`

	createProject = `INSERT INTO projects (title, firstname, lastname, email, completion, description)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING project_id, title, firstname, lastname, email, completion, description, created_at, updated_at;`

	findProjectByID = `SELECT project_id, title, firstname, lastname, email, completion, description, created_at, updated_at
    FROM projects
    WHERE project_id = $1;`

	listProjects = `SELECT project_id, title, firstname, lastname, email, completion, description, created_at, updated_at
    FROM projects
    ORDER BY completion DESC;`

	deleteProject     = `DELETE FROM projects WHERE project_id = $1;`
	deleteAllProjects = `DELETE FROM projects;`

	createQualification = `INSERT INTO qualifications (title, firstname, lastname, email, completion, description)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING qualification_id, title, firstname, lastname, email, completion, description, created_at, updated_at;`

	findQualificationByID = `SELECT qualification_id, title, firstname, lastname, email, completion, description, created_at, updated_at
    FROM qualifications
    WHERE qualification_id = $1;`

	listQualifications = `SELECT qualification_id, title, firstname, lastname, email, completion, description, created_at, updated_at
    FROM qualifications
    ORDER BY completion DESC;`

	deleteQualification     = `DELETE FROM qualifications WHERE qualification_id = $1;`
	deleteAllQualifications = `DELETE FROM qualifications;`
)
