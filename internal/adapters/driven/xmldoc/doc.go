// Package xmldoc decodes the ISO 4217 list-one XML document.
//
// The expected shape is:
//
//	<ISO_4217 Pblshd="YYYY-MM-DD">
//	  <CcyTbl>
//	    <CcyNtry>
//	      <CtryNm>...</CtryNm>
//	      <CcyNm IsFund="true">...</CcyNm>
//	      <Ccy>USD</Ccy>
//	      <CcyNbr>840</CcyNbr>
//	      <CcyMnrUnts>2</CcyMnrUnts>
//	    </CcyNtry>
//	  </CcyTbl>
//	</ISO_4217>
//
// Only CtryNm is required inside an entry. The document must be UTF-8.
//
// The parser uses encoding/xml; the surrounding corpus has no XML library,
// and a struct-tag decoder is all this schema needs.
package xmldoc
