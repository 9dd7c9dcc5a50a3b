package users

// UserPatch: punteros para merge real, nil = no tocar.
// id y email no se incluyen porque son inmutables.
type UserPatch struct {
	UserType      *UserType   `json:"userType,omitempty"`
	Status        *UserStatus `json:"status,omitempty"`
	EmailVerified *bool       `json:"emailVerified,omitempty"`
	PhoneNumber   *string     `json:"phoneNumber,omitempty"`
	PhoneVerified *bool       `json:"phoneVerified,omitempty"`
	LastLoginAt   *string     `json:"lastLoginAt,omitempty"`
	UpdatedAt     *string     `json:"updatedAt,omitempty"`
}

// Apply hace merge superficial de los campos presentes.
func (p UserPatch) Apply(u User) User {
	if p.UserType != nil {
		u.UserType = *p.UserType
	}
	if p.Status != nil {
		u.Status = *p.Status
	}
	if p.EmailVerified != nil {
		u.EmailVerified = *p.EmailVerified
	}
	if p.PhoneNumber != nil {
		u.PhoneNumber = *p.PhoneNumber
	}
	if p.PhoneVerified != nil {
		u.PhoneVerified = *p.PhoneVerified
	}
	if p.LastLoginAt != nil {
		u.LastLoginAt = *p.LastLoginAt
	}
	if p.UpdatedAt != nil {
		u.UpdatedAt = *p.UpdatedAt
	}
	return u
}

// ProfilePatch es el cuerpo de PUT /profile y el merge local del perfil.
type ProfilePatch struct {
	FirstName             *string   `json:"firstName,omitempty"`
	LastName              *string   `json:"lastName,omitempty"`
	DateOfBirth           *string   `json:"dateOfBirth,omitempty"`
	Gender                *string   `json:"gender,omitempty"`
	Height                *float64  `json:"height,omitempty"`
	Weight                *float64  `json:"weight,omitempty"`
	BloodType             *string   `json:"bloodType,omitempty"`
	Allergies             *[]string `json:"allergies,omitempty"`
	ChronicConditions     *[]string `json:"chronicConditions,omitempty"`
	Medications           *[]string `json:"medications,omitempty"`
	EmergencyContactName  *string   `json:"emergencyContactName,omitempty"`
	EmergencyContactPhone *string   `json:"emergencyContactPhone,omitempty"`
	PrimaryCarePhysician  *string   `json:"primaryCarePhysician,omitempty"`
	InsuranceProvider     *string   `json:"insuranceProvider,omitempty"`
	ProfilePicture        *string   `json:"profilePicture,omitempty"`
	Address               *string   `json:"address,omitempty"`
	City                  *string   `json:"city,omitempty"`
	State                 *string   `json:"state,omitempty"`
	ZipCode               *string   `json:"zipCode,omitempty"`
	Country               *string   `json:"country,omitempty"`
}

// Apply hace merge superficial sobre base. Con base vacía el resultado es exactamente el patch.
func (p ProfilePatch) Apply(base Profile) Profile {
	out := base.clone()
	setString(&out.FirstName, p.FirstName)
	setString(&out.LastName, p.LastName)
	setString(&out.DateOfBirth, p.DateOfBirth)
	setString(&out.Gender, p.Gender)
	if p.Height != nil {
		out.Height = cloneFloat(p.Height)
	}
	if p.Weight != nil {
		out.Weight = cloneFloat(p.Weight)
	}
	setString(&out.BloodType, p.BloodType)
	if p.Allergies != nil {
		out.Allergies = cloneStrings(*p.Allergies)
	}
	if p.ChronicConditions != nil {
		out.ChronicConditions = cloneStrings(*p.ChronicConditions)
	}
	if p.Medications != nil {
		out.Medications = cloneStrings(*p.Medications)
	}
	setString(&out.EmergencyContactName, p.EmergencyContactName)
	setString(&out.EmergencyContactPhone, p.EmergencyContactPhone)
	setString(&out.PrimaryCarePhysician, p.PrimaryCarePhysician)
	setString(&out.InsuranceProvider, p.InsuranceProvider)
	setString(&out.ProfilePicture, p.ProfilePicture)
	setString(&out.Address, p.Address)
	setString(&out.City, p.City)
	setString(&out.State, p.State)
	setString(&out.ZipCode, p.ZipCode)
	setString(&out.Country, p.Country)
	return out
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
