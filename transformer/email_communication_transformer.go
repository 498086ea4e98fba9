// Copyright (C) 2025 Tim Bastin, l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package transformer

import (
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/vulify/database/models"
	"github.com/l3montree-dev/vulify/dtos"
	"github.com/l3montree-dev/vulify/utils"
)

func SendEmailRequestToModel(customerID uuid.UUID, r dtos.SendEmailRequest, sentDate time.Time) models.EmailCommunication {
	return models.EmailCommunication{
		CustomerID:     customerID,
		RecipientEmail: r.RecipientEmail,
		Subject:        r.Subject,
		Body:           r.Body,
		SentDate:       sentDate,
		Status:         models.EmailStatusSent,
		EmailType:      r.EmailType,
	}
}

func EmailCommunicationToDTO(e models.EmailCommunication) dtos.EmailCommunicationDTO {
	return dtos.EmailCommunicationDTO{
		ID:             e.ID,
		CustomerID:     e.CustomerID,
		RecipientEmail: e.RecipientEmail,
		Subject:        e.Subject,
		Body:           e.Body,
		SentDate:       e.SentDate,
		Status:         string(e.Status),
		EmailType:      e.EmailType,
	}
}

func EmailCommunicationsToDTOs(emails []models.EmailCommunication) []dtos.EmailCommunicationDTO {
	return utils.Map(emails, EmailCommunicationToDTO)
}
